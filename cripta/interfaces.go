package cripta

type IKeySchedule interface {
	GenerateRoundKeys(masterKey []uint64) ([][]uint64, error)
}

type IRoundFunction interface {
	Apply(state []uint64)
	ApplyInverse(state []uint64)
}

type ISymmetricCipher interface {
	SetKey(key []uint8) error
	EncryptBlock(plainBlock []uint8) ([]uint8, error)
	DecryptBlock(cipherBlock []uint8) ([]uint8, error)
}
