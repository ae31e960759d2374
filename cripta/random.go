package cripta

import (
	"crypto/rand"

	"github.com/go-errors/errors"
)

// GenerateRandomBytes заполняет data случайными байтами
func GenerateRandomBytes(data []byte) (int, error) {
	return rand.Read(data)
}

// GenerateRandomKey генерирует случайный мастер-ключ из Nk слов
func GenerateRandomKey(params Params) ([]uint64, error) {
	key := make([]byte, params.Nk*8)
	if _, err := GenerateRandomBytes(key); err != nil {
		return nil, errors.Wrap(err, 0)
	}
	return BytesToWords(key), nil
}
