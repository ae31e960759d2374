package cripta

import (
	"crypto/cipher"

	"github.com/go-errors/errors"
)

// KalynaCipher реализует байтовый интерфейс шифра Калина (ДСТУ 7624:2014).
// Блоки и ключи передаются в каноническом порядке байт: байт 8*i+j это
// j-й младший байт слова i.
type KalynaCipher struct {
	ctx       *CipherContext
	blockSize int // в байтах: 16, 32 или 64
	keySize   int // в байтах: 16, 32 или 64
}

var _ ISymmetricCipher = (*KalynaCipher)(nil)
var _ cipher.Block = (*KalynaCipher)(nil)

// NewKalynaCipher создает шифр с размерами блока и ключа в битах
func NewKalynaCipher(blockBits, keyBits int) (*KalynaCipher, error) {
	ctx, err := NewCipherContext(blockBits, keyBits)
	if err != nil {
		return nil, err
	}

	return &KalynaCipher{
		ctx:       ctx,
		blockSize: blockBits / 8,
		keySize:   keyBits / 8,
	}, nil
}

// NewCipher создает cipher.Block для ключа key и блока blockBits бит.
// Размер ключа определяется длиной key.
func NewCipher(key []byte, blockBits int) (cipher.Block, error) {
	kc, err := NewKalynaCipher(blockBits, len(key)*8)
	if err != nil {
		return nil, err
	}
	if err := kc.SetKey(key); err != nil {
		return nil, err
	}
	return kc, nil
}

// SetKey устанавливает ключ шифрования
func (kc *KalynaCipher) SetKey(key []byte) error {
	if len(key) != kc.keySize {
		return errors.Wrap(KeySizeError(len(key)), 0)
	}

	return kc.ctx.ExpandKey(BytesToWords(key))
}

// EncryptBlock шифрует блок данных
func (kc *KalynaCipher) EncryptBlock(plainBlock []byte) ([]byte, error) {
	if err := kc.checkBlock(plainBlock); err != nil {
		return nil, err
	}

	return WordsToBytes(kc.ctx.Encipher(BytesToWords(plainBlock))), nil
}

// DecryptBlock расшифровывает блок данных
func (kc *KalynaCipher) DecryptBlock(cipherBlock []byte) ([]byte, error) {
	if err := kc.checkBlock(cipherBlock); err != nil {
		return nil, err
	}

	return WordsToBytes(kc.ctx.Decipher(BytesToWords(cipherBlock))), nil
}

func (kc *KalynaCipher) checkBlock(block []byte) error {
	if len(block) != kc.blockSize {
		return errors.Errorf("block size must be %d bytes, got %d", kc.blockSize, len(block))
	}
	if !kc.ctx.Expanded() {
		return errors.New("key not set, call SetKey first")
	}
	return nil
}

// BlockSize возвращает размер блока в байтах
func (kc *KalynaCipher) BlockSize() int {
	return kc.blockSize
}

// Encrypt шифрует первый блок src в dst
func (kc *KalynaCipher) Encrypt(dst, src []byte) {
	kc.checkBuffers(dst, src)
	copy(dst, WordsToBytes(kc.ctx.Encipher(BytesToWords(src[:kc.blockSize]))))
}

// Decrypt расшифровывает первый блок src в dst
func (kc *KalynaCipher) Decrypt(dst, src []byte) {
	kc.checkBuffers(dst, src)
	copy(dst, WordsToBytes(kc.ctx.Decipher(BytesToWords(src[:kc.blockSize]))))
}

func (kc *KalynaCipher) checkBuffers(dst, src []byte) {
	if len(src) < kc.blockSize {
		panic("cripta: input not full block")
	}
	if len(dst) < kc.blockSize {
		panic("cripta: output not full block")
	}
}

// GetKeySize возвращает размер ключа в байтах
func (kc *KalynaCipher) GetKeySize() int {
	return kc.keySize
}

// GetRounds возвращает количество раундов
func (kc *KalynaCipher) GetRounds() int {
	return kc.ctx.Params().Nr
}

// Context возвращает контекст шифра
func (kc *KalynaCipher) Context() *CipherContext {
	return kc.ctx
}

// Close затирает ключевой материал
func (kc *KalynaCipher) Close() error {
	return kc.ctx.Close()
}
