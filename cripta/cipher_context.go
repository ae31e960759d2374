package cripta

import (
	"io"
	"sync/atomic"

	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
)

// CipherContext владеет параметрами, рабочим состоянием и таблицей
// раундовых ключей одного экземпляра Калины.
//
// Контекст не безопасен для одновременного использования: состояние
// перезаписывается каждым вызовом Encipher/Decipher. Для параллельной
// работы каждая горутина берет свой контекст (см. Clone).
type CipherContext struct {
	params      Params
	state       []uint64
	keys        *roundKeyTable
	round       IRoundFunction
	keySchedule IKeySchedule
	expanded    bool
	closed      bool
	log         *logrus.Entry
}

// NewCipherContext проверяет размеры блока и ключа (в битах) и выделяет
// обнуленные буферы состояния и раундовых ключей
func NewCipherContext(blockBits, keyBits int) (*CipherContext, error) {
	params, err := ResolveParams(blockBits, keyBits)
	if err != nil {
		return nil, errors.Wrap(err, 0)
	}

	round := NewKalynaRoundFunction(params.Nb, NewKalynaGF28Service())

	roundKeys := make([][]uint64, params.Nr+1)
	for i := range roundKeys {
		roundKeys[i] = make([]uint64, params.Nb)
	}

	ctx := &CipherContext{
		params:      params,
		state:       make([]uint64, params.Nb),
		keys:        newRoundKeyTable(roundKeys),
		round:       round,
		keySchedule: NewKalynaKeySchedule(params, round),
		log:         discardLogger(),
	}

	return ctx, nil
}

// roundKeyTable таблица раундовых ключей, общая для контекста и его копий.
// После заполнения не меняется и затирается, когда ее отпускает последний
// владелец.
type roundKeyTable struct {
	keys [][]uint64
	refs atomic.Int32
}

func newRoundKeyTable(keys [][]uint64) *roundKeyTable {
	table := &roundKeyTable{keys: keys}
	table.refs.Store(1)
	return table
}

func (t *roundKeyTable) acquire() *roundKeyTable {
	t.refs.Add(1)
	return t
}

func (t *roundKeyTable) release() {
	if t.refs.Add(-1) > 0 {
		return
	}
	for _, key := range t.keys {
		clear(key)
	}
}

func discardLogger() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return logrus.NewEntry(log)
}

// SetLogger задает логгер для отладочных сообщений. Ключевой материал
// в лог не попадает.
func (ctx *CipherContext) SetLogger(log *logrus.Entry) {
	if log == nil {
		log = discardLogger()
	}
	ctx.log = log.WithFields(logrus.Fields{
		"component": "cripta",
		"cipher":    ctx.params.String(),
	})

	ctx.log.WithFields(logrus.Fields{
		"blockBits": ctx.params.BlockBits(),
		"keyBits":   ctx.params.KeyBits(),
		"rounds":    ctx.params.Nr,
	}).Debug("parameters resolved")
}

// Params возвращает параметры контекста
func (ctx *CipherContext) Params() Params {
	return ctx.params
}

// ExpandKey вычисляет раундовые ключи по мастер-ключу из Nk слов.
// Должен быть вызван до Encipher/Decipher. Контекст получает новую
// таблицу, копии со старой таблицей продолжают работать с прежним ключом.
func (ctx *CipherContext) ExpandKey(key []uint64) error {
	ctx.mustBeOpen()

	roundKeys, err := ctx.keySchedule.GenerateRoundKeys(key)
	if err != nil {
		return errors.Wrap(err, 0)
	}

	previous := ctx.keys
	ctx.keys = newRoundKeyTable(roundKeys)
	previous.release()
	ctx.expanded = true

	ctx.log.WithField("roundKeys", len(roundKeys)).Debug("key expanded")
	return nil
}

// Encipher зашифровывает блок из Nb слов и возвращает новый срез
func (ctx *CipherContext) Encipher(plaintext []uint64) []uint64 {
	ctx.mustBeReady(plaintext)

	nr := ctx.params.Nr
	roundKeys := ctx.keys.keys
	copy(ctx.state, plaintext)

	addRoundKey(ctx.state, roundKeys[0])
	for round := 1; round < nr; round++ {
		ctx.round.Apply(ctx.state)
		xorRoundKey(ctx.state, roundKeys[round])
	}
	ctx.round.Apply(ctx.state)
	addRoundKey(ctx.state, roundKeys[nr])

	return ctx.output()
}

// Decipher расшифровывает блок из Nb слов и возвращает новый срез
func (ctx *CipherContext) Decipher(ciphertext []uint64) []uint64 {
	ctx.mustBeReady(ciphertext)

	nr := ctx.params.Nr
	roundKeys := ctx.keys.keys
	copy(ctx.state, ciphertext)

	subRoundKey(ctx.state, roundKeys[nr])
	for round := nr - 1; round > 0; round-- {
		ctx.round.ApplyInverse(ctx.state)
		xorRoundKey(ctx.state, roundKeys[round])
	}
	ctx.round.ApplyInverse(ctx.state)
	subRoundKey(ctx.state, roundKeys[0])

	return ctx.output()
}

func (ctx *CipherContext) output() []uint64 {
	out := make([]uint64, len(ctx.state))
	copy(out, ctx.state)
	return out
}

// RoundKeys возвращает копию таблицы раундовых ключей
func (ctx *CipherContext) RoundKeys() [][]uint64 {
	ctx.mustBeOpen()

	out := make([][]uint64, len(ctx.keys.keys))
	for i, key := range ctx.keys.keys {
		out[i] = make([]uint64, len(key))
		copy(out[i], key)
	}
	return out
}

// Expanded сообщает, вычислены ли раундовые ключи
func (ctx *CipherContext) Expanded() bool {
	return ctx.expanded
}

// Clone создает контекст с собственным состоянием и общей таблицей
// раундовых ключей, которая после ExpandKey только читается. Таблица
// затирается при Close последнего контекста, который ее использует.
func (ctx *CipherContext) Clone() *CipherContext {
	ctx.mustBeOpen()

	return &CipherContext{
		params:      ctx.params,
		state:       make([]uint64, ctx.params.Nb),
		keys:        ctx.keys.acquire(),
		round:       ctx.round,
		keySchedule: ctx.keySchedule,
		expanded:    ctx.expanded,
		log:         ctx.log,
	}
}

// Close затирает состояние и отпускает таблицу раундовых ключей.
// После Close контекст использовать нельзя; повторный Close ничего не делает.
func (ctx *CipherContext) Close() error {
	if ctx.closed {
		return nil
	}

	clear(ctx.state)
	ctx.keys.release()

	ctx.state = nil
	ctx.keys = nil
	ctx.expanded = false
	ctx.closed = true

	ctx.log.Debug("context closed")
	return nil
}

func (ctx *CipherContext) mustBeOpen() {
	if ctx.closed {
		panic("cripta: use of closed Kalyna context")
	}
}

func (ctx *CipherContext) mustBeReady(block []uint64) {
	ctx.mustBeOpen()
	if !ctx.expanded {
		panic("cripta: Kalyna key not expanded, call ExpandKey first")
	}
	if len(block) != ctx.params.Nb {
		panic("cripta: input is not a full Kalyna block")
	}
}
