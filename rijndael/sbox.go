package rijndael

import "math/bits"

const (
	// первая строка циркулянтной матрицы аффинного преобразования: 10001111 (младший бит первым)
	affineRow   byte = 0xF1
	affineConst byte = 0x63

	// первая строка обратной матрицы: 00100101 (младший бит первым)
	invAffineRow   byte = 0xA4
	invAffineConst byte = 0x05
)

var (
	sBox    = buildSBox(SBoxForward)
	invSBox = buildSBox(SBoxInverse)
)

// SBoxForward вычисляет прямой S-бокс: обратный элемент в поле и аффинное преобразование
func SBoxForward(b byte) byte {
	if b == 0 {
		return affineConst
	}
	return affineTransform(Inverse(b), affineRow, affineConst)
}

// SBoxInverse вычисляет обратный S-бокс: обратное аффинное преобразование и обратный элемент
func SBoxInverse(b byte) byte {
	if b == affineConst {
		return 0
	}
	return Inverse(affineTransform(b, invAffineRow, invAffineConst))
}

// affineTransform умножает битовый вектор b на циркулянтную матрицу над GF(2)
// и прибавляет константу c. Строка i матрицы - это row, циклически сдвинутая на i.
func affineTransform(b, row, c byte) byte {
	var result byte
	for i := 0; i < 8; i++ {
		r := bits.RotateLeft8(row, i)
		parity := byte(bits.OnesCount8(r&b) & 1)
		result |= parity << uint(i)
	}
	return result ^ c
}

func buildSBox(f func(byte) byte) [256]byte {
	var table [256]byte
	for i := 0; i < 256; i++ {
		table[i] = f(byte(i))
	}
	return table
}
