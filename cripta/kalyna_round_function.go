package cripta

// KalynaRoundFunction реализует раундовое преобразование Калины без
// добавления ключа: SubBytes -> ShiftRows -> MixColumns и обратное ему
type KalynaRoundFunction struct {
	nb        int
	gfService *GF28Service
}

// NewKalynaRoundFunction создает раундовую функцию для блока из nb слов
func NewKalynaRoundFunction(nb int, gfService *GF28Service) *KalynaRoundFunction {
	return &KalynaRoundFunction{
		nb:        nb,
		gfService: gfService,
	}
}

// Apply выполняет раунд зашифрования над состоянием на месте
func (rf *KalynaRoundFunction) Apply(state []uint64) {
	rf.subBytes(state)
	rf.shiftRows(state)
	rf.mixColumns(state)
}

// ApplyInverse выполняет раунд расшифрования (обратный порядок)
func (rf *KalynaRoundFunction) ApplyInverse(state []uint64) {
	rf.invMixColumns(state)
	rf.invShiftRows(state)
	rf.invSubBytes(state)
}

// subBytes применяет S-бокс j%4 к байту j каждого слова
func (rf *KalynaRoundFunction) subBytes(state []uint64) {
	substitute(state, &sBoxes)
}

// invSubBytes применяет обратные S-боксы
func (rf *KalynaRoundFunction) invSubBytes(state []uint64) {
	substitute(state, &invSBoxes)
}

func substitute(state []uint64, boxes *[4][256]byte) {
	for i, w := range state {
		var out uint64
		for j := 0; j < 8; j++ {
			b := byte(w >> (8 * j))
			out |= uint64(boxes[j%4][b]) << (8 * j)
		}
		state[i] = out
	}
}

// shiftRows сдвигает строку row на row/(8/nb) столбцов
func (rf *KalynaRoundFunction) shiftRows(state []uint64) {
	rf.permuteRows(state, false)
}

// invShiftRows выполняет обратный сдвиг строк
func (rf *KalynaRoundFunction) invShiftRows(state []uint64) {
	rf.permuteRows(state, true)
}

func (rf *KalynaRoundFunction) permuteRows(state []uint64, inverse bool) {
	src := WordsToBytes(state)
	dst := make([]byte, len(src))
	shift := -1

	for row := 0; row < 8; row++ {
		if row%(8/rf.nb) == 0 {
			shift++
		}
		for col := 0; col < rf.nb; col++ {
			moved := (col + shift) % rf.nb
			if inverse {
				dst[row+col*8] = src[row+moved*8]
			} else {
				dst[row+moved*8] = src[row+col*8]
			}
		}
	}

	copy(state, BytesToWords(dst))
}

// mixColumns умножает каждый столбец на MDS-матрицу
func (rf *KalynaRoundFunction) mixColumns(state []uint64) {
	rf.matrixMultiply(state, &mdsMatrix)
}

// invMixColumns умножает каждый столбец на обратную MDS-матрицу
func (rf *KalynaRoundFunction) invMixColumns(state []uint64) {
	rf.matrixMultiply(state, &mdsInvMatrix)
}

func (rf *KalynaRoundFunction) matrixMultiply(state []uint64, matrix *[8][8]byte) {
	data := WordsToBytes(state)

	for col := 0; col < rf.nb; col++ {
		var column [8]byte
		copy(column[:], data[col*8:col*8+8])
		product := rf.gfService.MultiplyColumn(matrix, column)
		copy(data[col*8:], product[:])
	}

	copy(state, BytesToWords(data))
}
