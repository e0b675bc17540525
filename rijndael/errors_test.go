package rijndael

import (
	"fmt"
	"testing"

	"github.com/go-errors/errors"
	"github.com/stretchr/testify/assert"
)

func TestCipherErrorMessage(t *testing.T) {
	err := newCipherError(InvalidPaddingBytes, "byte %d is 0x%02x", 3, 7)
	assert.Equal(t, "invalid padding bytes: byte 3 is 0x07", err.Error())

	// подробный вывод содержит место возникновения
	assert.Contains(t, fmt.Sprintf("%+v", err), "errors_test.go")
}

func TestHasErrorCodeThroughWrapping(t *testing.T) {
	err := newCipherError(InvalidInputLength, "length 17")

	wrapped := errors.WrapPrefix(errors.Wrap(err, 0), "decrypting", 0)
	assert.True(t, HasErrorCode(wrapped, InvalidInputLength))
	assert.False(t, HasErrorCode(wrapped, InvalidKeyLength))
	assert.False(t, IsPaddingError(wrapped))

	assert.False(t, HasErrorCode(errors.New("plain"), InvalidInputLength))
	assert.False(t, HasErrorCode(nil, InvalidInputLength))
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "key not set", KeyNotSet.String())
	assert.Equal(t, "error code 42", ErrorCode(42).String())
}
