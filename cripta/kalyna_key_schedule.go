package cripta

import (
	"fmt"
)

// tmvInit начальное значение вектора tmv: 0x0001 в каждой 16-битной позиции
const tmvInit uint64 = 0x0001000100010001

// вид шага генерации четных ключей
type evenKeyStep int

const (
	// ключ равен блоку: одна половина, один ключ за шаг
	singleKeyStep evenKeyStep = iota
	// ключ вдвое длиннее блока: обе половины, два ключа за шаг
	doubleKeyStep
)

// KalynaKeySchedule реализует расписание ключей Калины
type KalynaKeySchedule struct {
	params Params
	round  IRoundFunction
}

// NewKalynaKeySchedule создает расписание ключей для заданных параметров
func NewKalynaKeySchedule(params Params, round IRoundFunction) *KalynaKeySchedule {
	return &KalynaKeySchedule{
		params: params,
		round:  round,
	}
}

// GenerateRoundKeys генерирует Nr+1 раундовых ключей по Nb слов.
// Мастер-ключ не изменяется.
func (ks *KalynaKeySchedule) GenerateRoundKeys(masterKey []uint64) ([][]uint64, error) {
	if len(masterKey) != ks.params.Nk {
		return nil, KeySizeError(len(masterKey) * 8)
	}

	kt := ks.expandKt(masterKey)

	roundKeys := make([][]uint64, ks.params.Nr+1)
	ks.expandEven(masterKey, kt, roundKeys)
	ks.expandOdd(roundKeys)

	return roundKeys, nil
}

// expandKt вычисляет вспомогательный ключ Kt
func (ks *KalynaKeySchedule) expandKt(masterKey []uint64) []uint64 {
	nb := ks.params.Nb

	state := make([]uint64, nb)
	state[0] = uint64(ks.params.Nb + ks.params.Nk + 1)

	k0 := masterKey[:nb]
	k1 := masterKey[len(masterKey)-nb:]

	addRoundKeyExpand(state, k0)
	ks.round.Apply(state)
	xorRoundKeyExpand(state, k1)
	ks.round.Apply(state)
	addRoundKeyExpand(state, k0)
	ks.round.Apply(state)

	return state
}

func (ks *KalynaKeySchedule) stepKind() evenKeyStep {
	if ks.params.DoubleKey() {
		return doubleKeyStep
	}
	return singleKeyStep
}

// expandEven заполняет ключи с четными индексами 0, 2, ..., Nr
func (ks *KalynaKeySchedule) expandEven(masterKey, kt []uint64, roundKeys [][]uint64) {
	nb := ks.params.Nb
	nr := ks.params.Nr

	tmv := make([]uint64, nb)
	for i := range tmv {
		tmv[i] = tmvInit
	}

	workingKey := make([]uint64, len(masterKey))
	copy(workingKey, masterKey)

	round := 0
	for {
		switch ks.stepKind() {
		case singleKeyStep:
			storeRoundKey(roundKeys, round, ks.evenKey(kt, tmv, workingKey[:nb]))
			if round == nr {
				return
			}
			round += 2

		case doubleKeyStep:
			storeRoundKey(roundKeys, round, ks.evenKey(kt, tmv, workingKey[:nb]))
			if round == nr {
				return
			}
			shiftWordsLeft(tmv)
			storeRoundKey(roundKeys, round+2, ks.evenKey(kt, tmv, workingKey[nb:2*nb]))
			if round+2 == nr {
				return
			}
			round += 4
		}

		shiftWordsLeft(tmv)
		rotateWordsLeft(workingKey)
	}
}

// evenKey выводит один четный ключ из половины рабочего ключа
func (ks *KalynaKeySchedule) evenKey(kt, tmv, keyPart []uint64) []uint64 {
	tweak := addWords(kt, tmv)

	state := make([]uint64, len(keyPart))
	copy(state, keyPart)

	addRoundKeyExpand(state, tweak)
	ks.round.Apply(state)
	xorRoundKeyExpand(state, tweak)
	ks.round.Apply(state)
	addRoundKeyExpand(state, tweak)

	return state
}

// expandOdd получает нечетные ключи сдвигом соседнего четного
// на 2*Nb+3 байт влево
func (ks *KalynaKeySchedule) expandOdd(roundKeys [][]uint64) {
	rotate := 2*ks.params.Nb + 3
	for i := 1; i < ks.params.Nr; i += 2 {
		storeRoundKey(roundKeys, i, rotateBytesLeft(roundKeys[i-1], rotate))
	}
}

// storeRoundKey записывает ключ раунда; каждый индекс пишется ровно один раз
func storeRoundKey(roundKeys [][]uint64, round int, key []uint64) {
	if roundKeys[round] != nil {
		panic(fmt.Sprintf("cripta: round key %d written twice", round))
	}
	roundKeys[round] = key
}
