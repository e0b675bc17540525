package rijndael

// Неприводимый полином поля Rijndael x⁸ + x⁴ + x³ + x + 1 (0x11B).
// Старший бит x⁸ неявный, поэтому при редукции используется только младший байт.
const modulus byte = 0x1B

// inverseTable хранит мультипликативные обратные для всех 256 элементов поля.
// Строится один раз при инициализации пакета и больше не изменяется.
var inverseTable = buildInverseTable()

// Add складывает два элемента из GF(2⁸) (побитовое XOR)
func Add(a, b byte) byte {
	return a ^ b
}

// Multiply умножает два элемента из GF(2⁸) по модулю 0x11B
func Multiply(a, b byte) byte {
	var result byte = 0
	var highBit byte = 0x80

	for i := 0; i < 8; i++ {
		if (b & 1) != 0 {
			result ^= a
		}

		carry := (a & highBit) != 0
		a <<= 1

		if carry {
			a ^= modulus
		}

		b >>= 1
	}

	return result
}

// Pow возводит элемент поля в степень n
func Pow(a byte, n int) byte {
	result := byte(1)
	for n > 0 {
		if n&1 != 0 {
			result = Multiply(result, a)
		}
		a = Multiply(a, a)
		n >>= 1
	}
	return result
}

// Inverse возвращает обратный элемент для a. По соглашению Inverse(0) == 0.
func Inverse(a byte) byte {
	return inverseTable[a]
}

// buildInverseTable использует тождество a⁻¹ = a²⁵⁴ (мультипликативная группа имеет порядок 255)
func buildInverseTable() [256]byte {
	var table [256]byte
	for a := 1; a < 256; a++ {
		table[a] = Pow(byte(a), 254)
	}
	return table
}
