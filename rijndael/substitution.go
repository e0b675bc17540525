package rijndael

import "strings"

// Variant выбирает реализацию шага подстановки
type Variant string

const (
	// VariantRijndael нелинейный S-бокс Rijndael
	VariantRijndael Variant = "rijndael"
	// VariantAdditive аддитивная подстановка в стиле Виженера: байт состояния плюс байт раундового ключа по модулю 256
	VariantAdditive Variant = "additive"
)

// Variants возвращает все поддерживаемые варианты
func Variants() []Variant {
	return []Variant{VariantRijndael, VariantAdditive}
}

// ParseVariant разбирает имя варианта; пустая строка означает VariantRijndael
func ParseVariant(name string) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(name))) {
	case "", VariantRijndael:
		return VariantRijndael, nil
	case VariantAdditive:
		return VariantAdditive, nil
	default:
		return "", newCipherError(InvalidVariant, "unknown variant %q", name)
	}
}

// Substitution шаг подстановки раунда. Реализация выбирается один раз при создании шифра.
type Substitution interface {
	SubBytes(state *State, roundKey *RoundKey)
	InvSubBytes(state *State, roundKey *RoundKey)
}

func newSubstitution(v Variant) (Substitution, error) {
	switch v {
	case VariantRijndael:
		return sBoxSubstitution{}, nil
	case VariantAdditive:
		return additiveSubstitution{}, nil
	default:
		return nil, newCipherError(InvalidVariant, "unknown variant %q", string(v))
	}
}

// sBoxSubstitution применяет S-бокс к каждому байту состояния, раундовый ключ не используется
type sBoxSubstitution struct{}

func (sBoxSubstitution) SubBytes(state *State, _ *RoundKey) {
	for i := 0; i < len(state); i++ {
		state[i] = sBox[state[i]]
	}
}

func (sBoxSubstitution) InvSubBytes(state *State, _ *RoundKey) {
	for i := 0; i < len(state); i++ {
		state[i] = invSBox[state[i]]
	}
}

type additiveSubstitution struct{}

func (additiveSubstitution) SubBytes(state *State, roundKey *RoundKey) {
	for i := 0; i < len(state); i++ {
		state[i] += roundKey[i]
	}
}

func (additiveSubstitution) InvSubBytes(state *State, roundKey *RoundKey) {
	for i := 0; i < len(state); i++ {
		state[i] -= roundKey[i]
	}
}
