package rijndael

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyRejectsWrongLength(t *testing.T) {
	for _, length := range []int{0, 1, 15, 17, 32} {
		_, err := NewKey(make([]byte, length))
		assert.Truef(t, HasErrorCode(err, InvalidKeyLength), "length %d", length)
	}

	key, err := NewKey([]byte("thisisaverysecre"))
	require.NoError(t, err)
	assert.Equal(t, Key{'t', 'h', 'i', 's', 'i', 's', 'a', 'v', 'e', 'r', 'y', 's', 'e', 'c', 'r', 'e'}, key)
}

func TestNormalizeKey(t *testing.T) {
	type scenario struct {
		name     string
		input    []byte
		expected []byte
	}

	scenarios := []scenario{
		{"empty", nil, bytes.Repeat([]byte{'0'}, KeySize)},
		{"short", []byte("abc"), []byte("abc0000000000000")},
		{"exact", []byte("thisisaverysecre"), []byte("thisisaverysecre")},
		{"long", []byte("thisisaverysecretkey"), []byte("thisisaverysecre")},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			key := NormalizeKey(s.input)
			assert.Equal(t, s.expected, key[:])
		})
	}
}

func TestParseHexKey(t *testing.T) {
	key, err := ParseHexKey(" 000102030405060708090a0b0c0d0e0f\n")
	require.NoError(t, err)
	assert.Equal(t, byte(0x0f), key[15])
	assert.Equal(t, "000102030405060708090a0b0c0d0e0f", key.String())

	_, err = ParseHexKey("zz")
	assert.True(t, HasErrorCode(err, InvalidKeyLength))

	_, err = ParseHexKey("0001")
	assert.True(t, HasErrorCode(err, InvalidKeyLength))
}

func TestParseVariant(t *testing.T) {
	type scenario struct {
		name     string
		expected Variant
	}

	scenarios := []scenario{
		{"", VariantRijndael},
		{"rijndael", VariantRijndael},
		{" Additive ", VariantAdditive},
	}

	for _, s := range scenarios {
		variant, err := ParseVariant(s.name)
		require.NoError(t, err)
		assert.Equal(t, s.expected, variant)
	}

	_, err := ParseVariant("xor")
	assert.True(t, HasErrorCode(err, InvalidVariant))
}
