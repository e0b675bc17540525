package rijndael

// Direction направление преобразования блока
type Direction int

const (
	Encrypting Direction = iota
	Decrypting
)

func (d Direction) String() string {
	if d == Decrypting {
		return "decrypt"
	}
	return "encrypt"
}

// Шаги раунда, которые попадают в TraceEvent.Step
const (
	StepAddRoundKey   = "AddRoundKey"
	StepSubBytes      = "SubBytes"
	StepShiftRows     = "ShiftRows"
	StepMixColumns    = "MixColumns"
	StepInvSubBytes   = "InvSubBytes"
	StepInvShiftRows  = "InvShiftRows"
	StepInvMixColumns = "InvMixColumns"
)

// TraceEvent снимок состояния после одного шага раунда
type TraceEvent struct {
	Direction Direction
	Round     int
	Step      string
	State     State
}

// Tracer получает события трассировки. Вызывается только если задан через WithTracer,
// получает копию состояния и не может повлиять на результат. При параллельной обработке
// вызывается из нескольких горутин.
type Tracer func(TraceEvent)

func (t Tracer) emit(dir Direction, round int, step string, s *State) {
	if t == nil {
		return
	}
	t(TraceEvent{Direction: dir, Round: round, Step: step, State: *s})
}
