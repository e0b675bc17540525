package rijndael

// RijndaelCipher реализует алгоритм Rijndael (AES-128) с выбранным вариантом подстановки
type RijndaelCipher struct {
	keySchedule   IKeySchedule
	roundFunction IRoundFunction
	variant       Variant
	tracer        Tracer
	cache         *ScheduleCache
	roundKeys     *RoundKeyTable
}

// Option настраивает RijndaelCipher
type Option func(*RijndaelCipher)

// WithTracer включает трассировку шагов раунда
func WithTracer(tracer Tracer) Option {
	return func(rc *RijndaelCipher) {
		rc.tracer = tracer
	}
}

// WithScheduleCache берет таблицы раундовых ключей из общего кэша
func WithScheduleCache(cache *ScheduleCache) Option {
	return func(rc *RijndaelCipher) {
		rc.cache = cache
	}
}

// NewRijndaelCipher создает новый шифр Rijndael
func NewRijndaelCipher(variant Variant, opts ...Option) (*RijndaelCipher, error) {
	substitution, err := newSubstitution(variant)
	if err != nil {
		return nil, err
	}

	cipher := &RijndaelCipher{
		keySchedule: RijndaelKeySchedule{},
		variant:     variant,
	}
	for _, opt := range opts {
		opt(cipher)
	}
	cipher.roundFunction = NewRijndaelRoundFunction(substitution, cipher.tracer)

	return cipher, nil
}

// SetKey устанавливает ключ шифрования
func (rc *RijndaelCipher) SetKey(key Key) error {
	if rc.cache != nil {
		rc.roundKeys = rc.cache.Get(key)
		return nil
	}
	rc.roundKeys = rc.keySchedule.GenerateRoundKeys(key)
	return nil
}

// SetRoundKeys устанавливает уже развернутую таблицу ключей
func (rc *RijndaelCipher) SetRoundKeys(table *RoundKeyTable) {
	rc.roundKeys = table
}

// EncryptBlock шифрует блок данных
func (rc *RijndaelCipher) EncryptBlock(plainBlock Block) (Block, error) {
	if rc.roundKeys == nil {
		return Block{}, newCipherError(KeyNotSet, "key not set, call SetKey first")
	}
	return encryptBlock(rc.roundFunction, rc.tracer, plainBlock, rc.roundKeys), nil
}

// DecryptBlock расшифровывает блок данных
func (rc *RijndaelCipher) DecryptBlock(cipherBlock Block) (Block, error) {
	if rc.roundKeys == nil {
		return Block{}, newCipherError(KeyNotSet, "key not set, call SetKey first")
	}
	return decryptBlock(rc.roundFunction, rc.tracer, cipherBlock, rc.roundKeys), nil
}

// Variant возвращает вариант подстановки
func (rc *RijndaelCipher) Variant() Variant {
	return rc.variant
}

// RoundKeys возвращает текущую таблицу раундовых ключей
func (rc *RijndaelCipher) RoundKeys() *RoundKeyTable {
	return rc.roundKeys
}

var defaultRoundFunction = NewRijndaelRoundFunction(sBoxSubstitution{}, nil)

// EncryptBlock шифрует один блок S-бокс вариантом с готовой таблицей ключей
func EncryptBlock(block Block, table *RoundKeyTable) Block {
	return encryptBlock(defaultRoundFunction, nil, block, table)
}

// DecryptBlock расшифровывает один блок S-бокс вариантом с готовой таблицей ключей
func DecryptBlock(block Block, table *RoundKeyTable) Block {
	return decryptBlock(defaultRoundFunction, nil, block, table)
}

func encryptBlock(rf IRoundFunction, tracer Tracer, block Block, table *RoundKeyTable) Block {
	state := State(block)

	// Начальное добавление ключа
	addRoundKey(&state, table.round(0))
	tracer.emit(Encrypting, 0, StepAddRoundKey, &state)

	for round := 1; round <= Rounds; round++ {
		rf.Apply(&state, round, table.round(round))
	}

	return Block(state)
}

func decryptBlock(rf IRoundFunction, tracer Tracer, block Block, table *RoundKeyTable) Block {
	state := State(block)

	for round := Rounds; round >= 1; round-- {
		rf.Invert(&state, round, table.round(round))
	}

	// Финальное добавление ключа
	addRoundKey(&state, table.round(0))
	tracer.emit(Decrypting, 0, StepAddRoundKey, &state)

	return Block(state)
}
