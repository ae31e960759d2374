package vectors

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/nPaBwaYT/kalyna/cripta"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getDummyLog() *logrus.Entry {
	log := logrus.New()
	log.Out = io.Discard
	return log.WithField("test", "test")
}

func TestReferenceVectorsPass(t *testing.T) {
	vectors, err := Reference()
	require.NoError(t, err)
	require.Len(t, vectors, 10)

	for _, workers := range []int{1, 3, 16} {
		results := NewRunner(workers, getDummyLog()).Run(vectors)

		require.Len(t, results, len(vectors))
		for i, result := range results {
			assert.Equal(t, vectors[i].Name, result.Vector.Name, "results keep input order")
			assert.NoError(t, result.Err, result.Vector.Name)
			assert.True(t, result.Passed, result.Vector.Name)
		}

		passed, total := Summary(results)
		assert.Equal(t, 10, passed)
		assert.Equal(t, 10, total)
	}
}

func TestReferenceVectorsShape(t *testing.T) {
	vectors, err := Reference()
	require.NoError(t, err)

	first := vectors[0]
	assert.Equal(t, "128/128 enciphering", first.Name)
	assert.Equal(t, cripta.Params{Nb: 2, Nk: 2, Nr: 10}, first.Params)
	assert.Equal(t, Encipher, first.Direction)
	assert.Equal(t, []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908}, first.Key)

	last := vectors[9]
	assert.Equal(t, Decipher, last.Direction)
	assert.Equal(t, cripta.Params{Nb: 8, Nk: 8, Nr: 18}, last.Params)
}

func TestRunnerReportsMismatch(t *testing.T) {
	vectors, err := Reference()
	require.NoError(t, err)

	broken := vectors[0]
	broken.Expected = []uint64{0, 0}

	results := NewRunner(0, nil).Run([]Vector{broken, vectors[1]})

	assert.False(t, results[0].Passed)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, []uint64{0x20ac9b777d1cbf81, 0x06add2b439eac9e1}, results[0].Output)
	assert.True(t, results[1].Passed)

	passed, total := Summary(results)
	assert.Equal(t, 1, passed)
	assert.Equal(t, 2, total)
}

func TestRunnerEmpty(t *testing.T) {
	assert.Empty(t, NewRunner(2, nil).Run(nil))
}

func TestLoadRejects(t *testing.T) {
	type scenario struct {
		name    string
		content string
		check   func(t *testing.T, err error)
	}

	scenarios := []scenario{
		{
			"unsupported params",
			"vectors:\n  - name: bad\n    blockBits: 512\n    keyBits: 128\n    direction: encipher\n",
			func(t *testing.T, err error) {
				var paramsErr *cripta.ParamsError
				assert.ErrorAs(t, err, &paramsErr)
			},
		},
		{
			"bad hex",
			"vectors:\n  - name: bad\n    blockBits: 128\n    keyBits: 128\n    direction: encipher\n    key: [\"zz\", \"00\"]\n",
			func(t *testing.T, err error) {
				var hexErr *HexError
				assert.ErrorAs(t, err, &hexErr)
			},
		},
		{
			"short key",
			"vectors:\n  - name: bad\n    blockBits: 128\n    keyBits: 128\n    direction: encipher\n    key: [\"00\"]\n",
			func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "key has 1 words, want 2")
			},
		},
		{
			"unknown direction",
			"vectors:\n  - name: bad\n    blockBits: 128\n    keyBits: 128\n    direction: sideways\n",
			func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), `unknown direction "sideways"`)
			},
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			_, err := Load([]byte(s.content))
			require.Error(t, err)

			var vectorErr *VectorError
			require.ErrorAs(t, err, &vectorErr)
			assert.Equal(t, "bad", vectorErr.Name)
			s.check(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extra.yml")
	content := "\xef\xbb\xbfvectors:\n" +
		"  - name: extra\n" +
		"    blockBits: 128\n" +
		"    keyBits: 128\n" +
		"    direction: encipher\n" +
		"    key: [\"0x0706050403020100\", \"0f0e0d0c0b0a0908\"]\n" +
		"    input: [\"1716151413121110\", \"1f1e1d1c1b1a1918\"]\n" +
		"    expected: [\"20ac9b777d1cbf81\", \"6add2b439eac9e1\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	vectors, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, vectors, 1)

	results := NewRunner(1, nil).Run(vectors)
	assert.True(t, results[0].Passed)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestParseHexBytes(t *testing.T) {
	data, err := ParseHexBytes("    00010203 04050607\n    08090A0B0C0D0E0F\n")
	require.NoError(t, err)
	assert.Equal(t, []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908}, cripta.BytesToWords(data))

	_, err = ParseHexBytes("0g")
	var hexErr *HexError
	assert.ErrorAs(t, err, &hexErr)

	_, err = ParseHexBytes("000")
	assert.ErrorAs(t, err, &hexErr)
}

func TestApplyChecksBlockLength(t *testing.T) {
	params, err := cripta.ResolveParams(128, 128)
	require.NoError(t, err)

	_, err = Apply(params, Encipher, make([]uint64, 2), make([]uint64, 3), nil)
	var sizeErr cripta.BlockSizeError
	require.ErrorAs(t, err, &sizeErr)

	_, err = Apply(params, Encipher, make([]uint64, 4), make([]uint64, 2), nil)
	var keyErr cripta.KeySizeError
	require.ErrorAs(t, err, &keyErr)
}
