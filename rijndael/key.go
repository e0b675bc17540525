package rijndael

import (
	"encoding/hex"
	"strings"
)

// KeySize длина ключа в байтах
const KeySize = 16

// keyFiller дополняет короткие ключи в NormalizeKey
const keyFiller = '0'

// Key 16-байтовый секретный ключ
type Key [KeySize]byte

// NewKey проверяет длину ключа и копирует его
func NewKey(b []byte) (Key, error) {
	var key Key
	if len(b) != KeySize {
		return key, newCipherError(InvalidKeyLength, "key must be %d bytes, got %d", KeySize, len(b))
	}
	copy(key[:], b)
	return key, nil
}

// NormalizeKey приводит произвольную последовательность байт к ключу:
// длинные обрезаются до 16 байт, короткие дополняются символом '0'
func NormalizeKey(b []byte) Key {
	var key Key
	n := copy(key[:], b)
	for i := n; i < KeySize; i++ {
		key[i] = keyFiller
	}
	return key
}

// ParseHexKey разбирает ключ из hex строки
func ParseHexKey(s string) (Key, error) {
	data, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return Key{}, newCipherError(InvalidKeyLength, "invalid hex key: %v", err)
	}
	return NewKey(data)
}

// String возвращает ключ в hex
func (k Key) String() string {
	return hex.EncodeToString(k[:])
}
