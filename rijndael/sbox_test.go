package rijndael

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSBoxKnownValues(t *testing.T) {
	type scenario struct {
		in       byte
		expected byte
	}

	scenarios := []scenario{
		{0x00, 0x63},
		{0x01, 0x7C},
		{0x10, 0xCA},
		{0x53, 0xED},
		{0x9A, 0xB8},
		{0xC9, 0xDD},
		{0xFF, 0x16},
	}

	for _, s := range scenarios {
		assert.Equalf(t, s.expected, SBoxForward(s.in), "S(0x%02x)", s.in)
		assert.Equalf(t, s.in, SBoxInverse(s.expected), "S⁻¹(0x%02x)", s.expected)
	}
}

func TestSBoxPairing(t *testing.T) {
	for x := 0; x < 256; x++ {
		b := byte(x)
		assert.Equalf(t, b, SBoxInverse(SBoxForward(b)), "inverse(forward(0x%02x))", b)
		assert.Equalf(t, b, SBoxForward(SBoxInverse(b)), "forward(inverse(0x%02x))", b)
	}
}

func TestSBoxTablesMatchFunctions(t *testing.T) {
	seen := map[byte]bool{}
	for x := 0; x < 256; x++ {
		b := byte(x)
		assert.Equal(t, SBoxForward(b), sBox[b])
		assert.Equal(t, SBoxInverse(b), invSBox[b])
		seen[sBox[b]] = true
	}
	assert.Len(t, seen, 256, "S-box must be a permutation")
}

func TestSBoxHasNoFixedPoints(t *testing.T) {
	for x := 0; x < 256; x++ {
		assert.NotEqual(t, byte(x), sBox[x])
	}
}
