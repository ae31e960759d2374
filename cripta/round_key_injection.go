package cripta

// Внесение ключа в состояние. Сложение и вычитание по модулю 2^64
// используются только на первой и последней границе раундов, XOR на всех
// промежуточных.

// addRoundKey state[i] += key[i]
func addRoundKey(state, key []uint64) {
	for i := range state {
		state[i] += key[i]
	}
}

// subRoundKey state[i] -= key[i]
func subRoundKey(state, key []uint64) {
	for i := range state {
		state[i] -= key[i]
	}
}

// xorRoundKey state[i] ^= key[i]
func xorRoundKey(state, key []uint64) {
	for i := range state {
		state[i] ^= key[i]
	}
}

// addRoundKeyExpand то же сложение, но с произвольным значением вместо
// раундового ключа; нужно только расписанию ключей
func addRoundKeyExpand(state, value []uint64) {
	addRoundKey(state, value)
}

// xorRoundKeyExpand XOR с произвольным значением для расписания ключей
func xorRoundKeyExpand(state, value []uint64) {
	xorRoundKey(state, value)
}

// addWords возвращает новый массив a[i] + b[i]
func addWords(a, b []uint64) []uint64 {
	out := make([]uint64, len(a))
	copy(out, a)
	addRoundKey(out, b)
	return out
}
