package cripta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSBoxesArePermutations(t *testing.T) {
	for box := 0; box < 4; box++ {
		seen := make(map[byte]bool, 256)
		for i := 0; i < 256; i++ {
			seen[sBoxes[box][i]] = true
			assert.Equal(t, byte(i), invSBoxes[box][sBoxes[box][i]], "box %d input 0x%02x", box, i)
		}
		assert.Len(t, seen, 256, "box %d", box)
	}
}

func TestSBoxFirstEntries(t *testing.T) {
	assert.Equal(t, byte(0xa8), sBoxes[0][0])
	assert.Equal(t, byte(0xce), sBoxes[1][0])
	assert.Equal(t, byte(0x93), sBoxes[2][0])
	assert.Equal(t, byte(0x68), sBoxes[3][0])
}

func TestMDSInverse(t *testing.T) {
	gf := NewKalynaGF28Service()

	assert.Equal(t, [8]byte{0x01, 0x01, 0x05, 0x01, 0x08, 0x06, 0x07, 0x04}, mdsMatrix[0])
	assert.Equal(t, [8]byte{0xad, 0x95, 0x76, 0xa8, 0x2f, 0x49, 0xd7, 0xca}, mdsInvMatrix[0])

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			var sum byte
			for k := 0; k < 8; k++ {
				sum ^= gf.Multiply(mdsMatrix[row][k], mdsInvMatrix[k][col])
			}
			expected := byte(0)
			if row == col {
				expected = 1
			}
			assert.Equal(t, expected, sum, "row %d col %d", row, col)
		}
	}
}
