package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-errors/errors"
	"github.com/nPaBwaYT/kalyna/config"
	"github.com/nPaBwaYT/kalyna/cripta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, language string) (*App, *bytes.Buffer) {
	t.Helper()

	userConfig := config.GetDefaultConfig()
	userConfig.Language = language
	userConfig.Vectors.Workers = 2

	app, err := NewApp(&config.AppConfig{
		Name:       "kalyna",
		ConfigDir:  t.TempDir(),
		UserConfig: &userConfig,
	})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app.Out = out
	return app, out
}

func TestRunVectors(t *testing.T) {
	app, out := newTestApp(t, "en")

	require.NoError(t, app.RunVectors())

	output := out.String()
	assert.Equal(t, 5, strings.Count(output, "Success enciphering"))
	assert.Equal(t, 5, strings.Count(output, "Success deciphering"))
	assert.NotContains(t, output, "Failed")
	assert.Contains(t, output, "Kalyna (512, 512)")
	assert.Contains(t, output, "    81BF1C7D779BAC20E1C9EA39B4D2AD06\n")
	assert.Contains(t, output, "10 of 10 vectors passed")
}

func TestRunVectorsWithFailingExtraFile(t *testing.T) {
	app, out := newTestApp(t, "en")

	extra := filepath.Join(t.TempDir(), "extra.yml")
	content := "vectors:\n" +
		"  - name: wrong\n" +
		"    blockBits: 128\n" +
		"    keyBits: 128\n" +
		"    direction: decipher\n" +
		"    key: [\"0\", \"0\"]\n" +
		"    input: [\"0\", \"0\"]\n" +
		"    expected: [\"0\", \"0\"]\n"
	require.NoError(t, os.WriteFile(extra, []byte(content), 0o644))
	app.Config.UserConfig.Vectors.ExtraFile = extra

	err := app.RunVectors()

	var failedErr *VectorsFailedError
	require.ErrorAs(t, err, &failedErr)
	assert.Equal(t, 10, failedErr.Passed)
	assert.Equal(t, 11, failedErr.Total)
	assert.Contains(t, out.String(), "Failed deciphering")

	message, known := app.KnownError(err)
	assert.True(t, known)
	assert.Equal(t, "10 of 11 vectors passed", message)
}

func TestRunEncipherAndDecipher(t *testing.T) {
	app, out := newTestApp(t, "en")

	require.NoError(t, app.RunEncipher(128, 0,
		"000102030405060708090A0B0C0D0E0F",
		"101112131415161718191A1B1C1D1E1F",
	))
	assert.Contains(t, out.String(), "--- ENCIPHERING ---")
	assert.Contains(t, out.String(), "Ciphertext:\n    81BF1C7D779BAC20E1C9EA39B4D2AD06\n")

	out.Reset()
	require.NoError(t, app.RunDecipher(128, 128,
		"000102030405060708090A0B0C0D0E0F",
		"81BF1C7D779BAC20E1C9EA39B4D2AD06",
	))
	assert.Contains(t, out.String(), "--- DECIPHERING ---")
	assert.Contains(t, out.String(), "Plaintext:\n    101112131415161718191A1B1C1D1E1F\n")
}

func TestRunEncipherWithRandomKey(t *testing.T) {
	app, out := newTestApp(t, "en")

	require.NoError(t, app.RunEncipher(256, 512, "", strings.Repeat("00", 32)))

	assert.Contains(t, out.String(), "Kalyna (256, 512)")
	assert.Contains(t, out.String(), "Key:\n")
}

func TestRunSchedule(t *testing.T) {
	app, out := newTestApp(t, "ru")

	require.NoError(t, app.RunSchedule(128, 0, "000102030405060708090A0B0C0D0E0F"))

	output := out.String()
	assert.Contains(t, output, "Калина (128, 128)")
	assert.Contains(t, output, "Раундов: 10\n")
	assert.Contains(t, output, "Раундовый ключ 0: f4a082e0dc775b86e6b13a9b6b5e5016\n")
	assert.Contains(t, output, "Раундовый ключ 10: 6148d7e8d5f30bf618c4db94a8b12657\n")
	assert.NotContains(t, output, "Раундовый ключ 11:")
}

func TestKnownErrors(t *testing.T) {
	app, _ := newTestApp(t, "en")

	type scenario struct {
		name     string
		run      func() error
		expected string
	}

	scenarios := []scenario{
		{
			"unsupported params",
			func() error { return app.RunEncipher(512, 0, strings.Repeat("00", 16), strings.Repeat("00", 64)) },
			app.Tr.UnsupportedParamsError,
		},
		{
			"bad hex",
			func() error { return app.RunEncipher(128, 0, strings.Repeat("00", 16), "xyz") },
			app.Tr.BadHexError,
		},
		{
			"key not whole words",
			func() error { return app.RunSchedule(128, 0, strings.Repeat("00", 15)) },
			app.Tr.KeySizeError,
		},
		{
			"schedule key does not match key size",
			func() error { return app.RunSchedule(128, 256, strings.Repeat("00", 16)) },
			app.Tr.KeySizeError,
		},
		{
			"key does not match key size",
			func() error { return app.RunDecipher(128, 256, strings.Repeat("00", 16), strings.Repeat("00", 16)) },
			app.Tr.KeySizeError,
		},
		{
			"block does not match block size",
			func() error { return app.RunEncipher(256, 0, strings.Repeat("00", 32), strings.Repeat("00", 16)) },
			app.Tr.BlockSizeError,
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			err := s.run()
			require.Error(t, err)

			message, known := app.KnownError(err)
			assert.True(t, known, err.Error())
			assert.Equal(t, s.expected, message)
		})
	}

	_, known := app.KnownError(errors.New("something else"))
	assert.False(t, known)
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil))

	err := WrapError(cripta.KeySizeError(3))
	var sizeErr cripta.KeySizeError
	assert.ErrorAs(t, err, &sizeErr)
	assert.Contains(t, err.(*errors.Error).ErrorStack(), "app_test.go")
}
