package cripta

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func randomWords(rng *rand.Rand, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = rng.Uint64()
	}
	return out
}

func cloneWords(words []uint64) []uint64 {
	out := make([]uint64, len(words))
	copy(out, words)
	return out
}

func TestShiftRows(t *testing.T) {
	type scenario struct {
		state    []uint64
		expected []uint64
	}

	scenarios := []scenario{
		{
			state:    []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908},
			expected: []uint64{0x0f0e0d0c03020100, 0x070605040b0a0908},
		},
		{
			state: []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908, 0x1716151413121110, 0x1f1e1d1c1b1a1918},
			expected: []uint64{
				0x0f0e15141b1a0100, 0x17161d1c03020908, 0x1f1e05040b0a1110, 0x07060d0c13121918,
			},
		},
		{
			state: []uint64{
				0x0706050403020100, 0x0f0e0d0c0b0a0908, 0x1716151413121110, 0x1f1e1d1c1b1a1918,
				0x2726252423222120, 0x2f2e2d2c2b2a2928, 0x3736353433323130, 0x3f3e3d3c3b3a3938,
			},
			expected: []uint64{
				0x0f161d242b323900, 0x171e252c333a0108, 0x1f262d343b020910, 0x272e353c030a1118,
				0x2f363d040b121920, 0x373e050c131a2128, 0x3f060d141b222930, 0x070e151c232a3138,
			},
		},
	}

	for _, s := range scenarios {
		rf := NewKalynaRoundFunction(len(s.state), NewKalynaGF28Service())
		state := cloneWords(s.state)

		rf.shiftRows(state)
		assert.Equal(t, s.expected, state)

		rf.invShiftRows(state)
		assert.Equal(t, s.state, state)
	}
}

func TestSubBytesAndMixColumns(t *testing.T) {
	rf := NewKalynaRoundFunction(2, NewKalynaGF28Service())
	input := []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908}

	state := cloneWords(input)
	rf.subBytes(state)
	assert.Equal(t, []uint64{0x2a45cb6b4d9abba8, 0x1f519017b3df3a71}, state)
	rf.invSubBytes(state)
	assert.Equal(t, input, state)

	state = cloneWords(input)
	rf.mixColumns(state)
	assert.Equal(t, []uint64{0x0312051c27362138, 0x4b5a4d546f7e6970}, state)
	rf.invMixColumns(state)
	assert.Equal(t, input, state)
}

func TestRoundOnZeroState(t *testing.T) {
	rf := NewKalynaRoundFunction(2, NewKalynaGF28Service())
	state := make([]uint64, 2)

	rf.Apply(state)

	assert.Equal(t, []uint64{0x14e6cc3f14e6cc3f, 0x14e6cc3f14e6cc3f}, state)
}

func TestRoundInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(7624))

	for _, nb := range []int{2, 4, 8} {
		rf := NewKalynaRoundFunction(nb, NewKalynaGF28Service())
		for i := 0; i < 50; i++ {
			input := randomWords(rng, nb)
			state := cloneWords(input)

			rf.Apply(state)
			rf.ApplyInverse(state)

			assert.Equal(t, input, state, "nb=%d", nb)
		}
	}
}
