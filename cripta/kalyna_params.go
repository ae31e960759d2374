package cripta

import (
	"fmt"
)

const bitsInWord = 64

// Params параметры экземпляра Калины в 64-битных словах
type Params struct {
	Nb int // слов в блоке
	Nk int // слов в ключе
	Nr int // число раундов
}

// допустимые пары (блок, ключ) в битах и число раундов
var kalynaRounds = map[[2]int]int{
	{128, 128}: 10,
	{128, 256}: 14,
	{256, 256}: 14,
	{256, 512}: 18,
	{512, 512}: 18,
}

// ParamsError неподдерживаемое сочетание размеров блока и ключа
type ParamsError struct {
	BlockBits int
	KeyBits   int
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("unsupported Kalyna parameters: block %d bits, key %d bits", e.BlockBits, e.KeyBits)
}

// KeySizeError неверная длина ключа
type KeySizeError int

func (k KeySizeError) Error() string {
	return fmt.Sprintf("invalid Kalyna key size %d", int(k))
}

// BlockSizeError неверная длина блока
type BlockSizeError int

func (k BlockSizeError) Error() string {
	return fmt.Sprintf("invalid Kalyna block size %d", int(k))
}

// ResolveParams проверяет размеры и вычисляет Nb, Nk, Nr
func ResolveParams(blockBits, keyBits int) (Params, error) {
	rounds, ok := kalynaRounds[[2]int{blockBits, keyBits}]
	if !ok {
		return Params{}, &ParamsError{BlockBits: blockBits, KeyBits: keyBits}
	}

	return Params{
		Nb: blockBits / bitsInWord,
		Nk: keyBits / bitsInWord,
		Nr: rounds,
	}, nil
}

// SupportedParams возвращает все допустимые наборы параметров
func SupportedParams() []Params {
	return []Params{
		{Nb: 2, Nk: 2, Nr: 10},
		{Nb: 2, Nk: 4, Nr: 14},
		{Nb: 4, Nk: 4, Nr: 14},
		{Nb: 4, Nk: 8, Nr: 18},
		{Nb: 8, Nk: 8, Nr: 18},
	}
}

// BlockBits размер блока в битах
func (p Params) BlockBits() int {
	return p.Nb * bitsInWord
}

// KeyBits размер ключа в битах
func (p Params) KeyBits() int {
	return p.Nk * bitsInWord
}

// DoubleKey true, если ключ вдвое длиннее блока
func (p Params) DoubleKey() bool {
	return p.Nk == 2*p.Nb
}

func (p Params) String() string {
	return fmt.Sprintf("Kalyna-%d/%d", p.BlockBits(), p.KeyBits())
}
