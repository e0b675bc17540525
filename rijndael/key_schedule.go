package rijndael

// Rounds количество раундов для 128-битного ключа
const Rounds = 10

// roundConstants константы раунда Rcon
var roundConstants = [Rounds]byte{0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1B, 0x36}

// RoundKey раундовый ключ, матрица 4×4 в том же порядке, что и State
type RoundKey [BlockSize]byte

// RoundKeyTable неизменяемая последовательность из Rounds+1 раундовых ключей.
// Может разделяться между горутинами без синхронизации.
type RoundKeyTable struct {
	keys [Rounds + 1]RoundKey
}

// Len возвращает количество раундовых ключей
func (t *RoundKeyTable) Len() int {
	return len(t.keys)
}

// Round возвращает копию раундового ключа с номером i
func (t *RoundKeyTable) Round(i int) RoundKey {
	return t.keys[i]
}

func (t *RoundKeyTable) round(i int) *RoundKey {
	return &t.keys[i]
}

// RijndaelKeySchedule реализует расписание ключей для Rijndael/AES-128
type RijndaelKeySchedule struct{}

// GenerateRoundKeys генерирует раундовые ключи
func (RijndaelKeySchedule) GenerateRoundKeys(masterKey Key) *RoundKeyTable {
	return ExpandKey(masterKey)
}

// ExpandKey разворачивает ключ в таблицу из 11 раундовых ключей
func ExpandKey(key Key) *RoundKeyTable {
	table := &RoundKeyTable{}
	table.keys[0] = RoundKey(key)

	for r := 1; r <= Rounds; r++ {
		prevKey := &table.keys[r-1]
		currentKey := &table.keys[r]

		// RotWord: последний столбец предыдущего ключа, циклический сдвиг вверх
		temp := [4]byte{prevKey[13], prevKey[14], prevKey[15], prevKey[12]}

		// SubWord
		for j := 0; j < 4; j++ {
			temp[j] = sBox[temp[j]]
		}

		// Rcon
		temp[0] ^= roundConstants[r-1]

		// первый столбец нового ключа
		for j := 0; j < 4; j++ {
			currentKey[j] = prevKey[j] ^ temp[j]
		}

		// остальные столбцы: предыдущий новый столбец XOR столбец предыдущего ключа
		for word := 1; word < 4; word++ {
			for j := 0; j < 4; j++ {
				idx := word*4 + j
				currentKey[idx] = currentKey[idx-4] ^ prevKey[idx]
			}
		}
	}

	return table
}
