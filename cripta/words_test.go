package cripta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordsToBytes(t *testing.T) {
	words := []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908}

	data := WordsToBytes(words)

	assert.Equal(t, []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}, data)
	assert.Equal(t, words, BytesToWords(data))
}

func TestBytesToWordsDropsPartialWord(t *testing.T) {
	assert.Equal(t, []uint64{0x0807060504030201}, BytesToWords([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}))
}

func TestRotateBytesLeft(t *testing.T) {
	words := []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908}

	assert.Equal(t, []uint64{0x0a09080706050403, 0x0201000f0e0d0c0b}, rotateBytesLeft(words, 3))
	assert.Equal(t, words, rotateBytesLeft(words, 16))
	assert.Equal(t, []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908}, words)
}

func TestRotateAndShiftWords(t *testing.T) {
	words := []uint64{1, 2, 3}
	rotateWordsLeft(words)
	assert.Equal(t, []uint64{2, 3, 1}, words)

	tmv := []uint64{tmvInit, 0x8000000000000000}
	shiftWordsLeft(tmv)
	assert.Equal(t, []uint64{0x0002000200020002, 0}, tmv)
}
