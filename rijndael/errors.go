package rijndael

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ErrorCode классифицирует ошибки шифра
type ErrorCode int

const (
	// InvalidPaddingLength маркер набивки последнего блока вне диапазона [1, 16]
	InvalidPaddingLength ErrorCode = iota + 1
	// InvalidPaddingBytes байты набивки не совпадают с маркером
	InvalidPaddingBytes
	// InvalidInputLength длина шифртекста не кратна размеру блока или равна нулю
	InvalidInputLength
	// InvalidKeyLength длина ключа отличается от 16 байт
	InvalidKeyLength
	// InvalidVariant неизвестный вариант подстановки
	InvalidVariant
	// KeyNotSet блочная операция вызвана до SetKey
	KeyNotSet
)

func (c ErrorCode) String() string {
	switch c {
	case InvalidPaddingLength:
		return "invalid padding length"
	case InvalidPaddingBytes:
		return "invalid padding bytes"
	case InvalidInputLength:
		return "invalid input length"
	case InvalidKeyLength:
		return "invalid key length"
	case InvalidVariant:
		return "invalid variant"
	case KeyNotSet:
		return "key not set"
	default:
		return fmt.Sprintf("error code %d", int(c))
	}
}

// CipherError ошибка с кодом, чтобы вызывающему коду было проще её разобрать
type CipherError struct {
	Message string
	Code    ErrorCode
	frame   xerrors.Frame
}

func newCipherError(code ErrorCode, format string, args ...interface{}) error {
	return CipherError{
		Message: fmt.Sprintf(format, args...),
		Code:    code,
		frame:   xerrors.Caller(1),
	}
}

// FormatError печатает код, сообщение и, в подробном режиме, место возникновения
func (ce CipherError) FormatError(p xerrors.Printer) error {
	p.Printf("%s: %s", ce.Code, ce.Message)
	ce.frame.Format(p)
	return nil
}

// Format реализует fmt.Formatter
func (ce CipherError) Format(f fmt.State, c rune) {
	xerrors.FormatError(ce, f, c)
}

func (ce CipherError) Error() string {
	return fmt.Sprint(ce)
}

// HasErrorCode сообщает, содержит ли цепочка ошибок CipherError с данным кодом
func HasErrorCode(err error, code ErrorCode) bool {
	var cipherErr CipherError
	if xerrors.As(err, &cipherErr) {
		return cipherErr.Code == code
	}
	return false
}

// IsPaddingError сообщает, что расшифрованная набивка не прошла проверку
func IsPaddingError(err error) bool {
	return HasErrorCode(err, InvalidPaddingLength) || HasErrorCode(err, InvalidPaddingBytes)
}
