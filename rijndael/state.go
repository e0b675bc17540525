package rijndael

// BlockSize размер блока в байтах
const BlockSize = 16

// Block 16-байтовая единица открытого или шифрованного текста
type Block [BlockSize]byte

// State матрица 4×4 байта в порядке по столбцам: байт (row, col) лежит по индексу col*4+row
type State [BlockSize]byte

// At возвращает байт в строке row и столбце col
func (s *State) At(row, col int) byte {
	return s[col*4+row]
}

// Set записывает байт в строку row и столбец col
func (s *State) Set(row, col int, v byte) {
	s[col*4+row] = v
}

// Column возвращает копию столбца col
func (s *State) Column(col int) [4]byte {
	var c [4]byte
	copy(c[:], s[col*4:col*4+4])
	return c
}

// SetColumn записывает столбец col
func (s *State) SetColumn(col int, c [4]byte) {
	copy(s[col*4:col*4+4], c[:])
}

// Row возвращает копию строки row
func (s *State) Row(row int) [4]byte {
	var r [4]byte
	for col := 0; col < 4; col++ {
		r[col] = s.At(row, col)
	}
	return r
}

// SetRow записывает строку row
func (s *State) SetRow(row int, r [4]byte) {
	for col := 0; col < 4; col++ {
		s.Set(row, col, r[col])
	}
}
