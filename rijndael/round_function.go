package rijndael

// Матрица MixColumns и обратная к ней над GF(2⁸)
var (
	mixMatrix = [4][4]byte{
		{0x02, 0x03, 0x01, 0x01},
		{0x01, 0x02, 0x03, 0x01},
		{0x01, 0x01, 0x02, 0x03},
		{0x03, 0x01, 0x01, 0x02},
	}
	invMixMatrix = [4][4]byte{
		{0x0E, 0x0B, 0x0D, 0x09},
		{0x09, 0x0E, 0x0B, 0x0D},
		{0x0D, 0x09, 0x0E, 0x0B},
		{0x0B, 0x0D, 0x09, 0x0E},
	}
)

// RijndaelRoundFunction реализует раундовую функцию для Rijndael.
// В последнем раунде (round == Rounds) MixColumns пропускается.
type RijndaelRoundFunction struct {
	substitution Substitution
	tracer       Tracer
}

// NewRijndaelRoundFunction создает раундовую функцию с заданной подстановкой
func NewRijndaelRoundFunction(substitution Substitution, tracer Tracer) *RijndaelRoundFunction {
	return &RijndaelRoundFunction{substitution: substitution, tracer: tracer}
}

// Apply применяет раунд шифрования: SubBytes, ShiftRows, MixColumns, AddRoundKey
func (rrf *RijndaelRoundFunction) Apply(state *State, round int, roundKey *RoundKey) {
	rrf.substitution.SubBytes(state, roundKey)
	rrf.tracer.emit(Encrypting, round, StepSubBytes, state)

	shiftRows(state)
	rrf.tracer.emit(Encrypting, round, StepShiftRows, state)

	if round < Rounds {
		mixColumns(state)
		rrf.tracer.emit(Encrypting, round, StepMixColumns, state)
	}

	addRoundKey(state, roundKey)
	rrf.tracer.emit(Encrypting, round, StepAddRoundKey, state)
}

// Invert отменяет Apply того же раунда: AddRoundKey, InvMixColumns, InvShiftRows, InvSubBytes
func (rrf *RijndaelRoundFunction) Invert(state *State, round int, roundKey *RoundKey) {
	addRoundKey(state, roundKey)
	rrf.tracer.emit(Decrypting, round, StepAddRoundKey, state)

	if round < Rounds {
		invMixColumns(state)
		rrf.tracer.emit(Decrypting, round, StepInvMixColumns, state)
	}

	invShiftRows(state)
	rrf.tracer.emit(Decrypting, round, StepInvShiftRows, state)

	rrf.substitution.InvSubBytes(state, roundKey)
	rrf.tracer.emit(Decrypting, round, StepInvSubBytes, state)
}

// shiftRows циклически сдвигает строку i влево на i позиций
func shiftRows(state *State) {
	for row := 1; row < 4; row++ {
		r := state.Row(row)
		var shifted [4]byte
		for col := 0; col < 4; col++ {
			shifted[col] = r[(col+row)%4]
		}
		state.SetRow(row, shifted)
	}
}

// invShiftRows циклически сдвигает строку i вправо на i позиций
func invShiftRows(state *State) {
	for row := 1; row < 4; row++ {
		r := state.Row(row)
		var shifted [4]byte
		for col := 0; col < 4; col++ {
			shifted[(col+row)%4] = r[col]
		}
		state.SetRow(row, shifted)
	}
}

// mixColumns выполняет перемешивание столбцов
func mixColumns(state *State) {
	for col := 0; col < 4; col++ {
		state.SetColumn(col, MixColumn(state.Column(col)))
	}
}

// invMixColumns выполняет обратное перемешивание столбцов
func invMixColumns(state *State) {
	for col := 0; col < 4; col++ {
		state.SetColumn(col, InvMixColumn(state.Column(col)))
	}
}

// MixColumn умножает столбец на матрицу MixColumns
func MixColumn(c [4]byte) [4]byte {
	return multiplyColumn(&mixMatrix, c)
}

// InvMixColumn умножает столбец на обратную матрицу MixColumns
func InvMixColumn(c [4]byte) [4]byte {
	return multiplyColumn(&invMixMatrix, c)
}

func multiplyColumn(m *[4][4]byte, c [4]byte) [4]byte {
	var out [4]byte
	for row := 0; row < 4; row++ {
		var acc byte
		for k := 0; k < 4; k++ {
			acc ^= Multiply(m[row][k], c[k])
		}
		out[row] = acc
	}
	return out
}

// addRoundKey добавляет раундовый ключ
func addRoundKey(state *State, roundKey *RoundKey) {
	for i := 0; i < len(state); i++ {
		state[i] ^= roundKey[i]
	}
}
