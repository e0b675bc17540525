package rijndael

type IKeySchedule interface {
	GenerateRoundKeys(masterKey Key) *RoundKeyTable
}

type IRoundFunction interface {
	Apply(state *State, round int, roundKey *RoundKey)
	Invert(state *State, round int, roundKey *RoundKey)
}

type ISymmetricCipher interface {
	SetKey(key Key) error
	EncryptBlock(plainBlock Block) (Block, error)
	DecryptBlock(cipherBlock Block) (Block, error)
}
