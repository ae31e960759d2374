package cripta

import (
	"encoding/binary"
)

// WordsToBytes переводит 64-битные слова в канонический порядок байт
// (little endian), независимо от порядка байт платформы
func WordsToBytes(words []uint64) []byte {
	out := make([]byte, len(words)*8)
	for i, w := range words {
		binary.LittleEndian.PutUint64(out[i*8:], w)
	}
	return out
}

// BytesToWords обратное преобразование. Длина должна быть кратна 8,
// неполное последнее слово отбрасывается.
func BytesToWords(data []byte) []uint64 {
	out := make([]uint64, len(data)/8)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(data[i*8:])
	}
	return out
}

func rotateWordsLeft(words []uint64) {
	if len(words) == 0 {
		return
	}
	first := words[0]
	copy(words, words[1:])
	words[len(words)-1] = first
}

func shiftWordsLeft(words []uint64) {
	for i := range words {
		words[i] <<= 1
	}
}

// rotateBytesLeft циклически сдвигает каноническое байтовое представление
// слов на n байт влево и возвращает новые слова
func rotateBytesLeft(words []uint64, n int) []uint64 {
	data := WordsToBytes(words)
	n %= len(data)
	rotated := append(append(make([]byte, 0, len(data)), data[n:]...), data[:n]...)
	return BytesToWords(rotated)
}
