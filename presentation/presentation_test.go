package presentation

import (
	"testing"

	"github.com/nPaBwaYT/kalyna/config"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	type scenario struct {
		name     string
		words    []uint64
		cfg      config.OutputConfig
		expected string
	}

	words := []uint64{0x0706050403020100, 0x0f0e0d0c0b0a0908, 0x1716151413121110, 0x1f1e1d1c1b1a1918}

	scenarios := []scenario{
		{
			"defaults",
			words,
			config.GetDefaultConfig().Output,
			"    000102030405060708090A0B0C0D0E0F\n    101112131415161718191A1B1C1D1E1F\n",
		},
		{
			"lowercase, eight per line, no indent",
			words[:2],
			config.OutputConfig{Lowercase: true, BytesPerLine: 8},
			"0001020304050607\n08090a0b0c0d0e0f\n",
		},
		{
			"zero value falls back to sixteen",
			[]uint64{0xefcdab8967452301},
			config.OutputConfig{},
			"0123456789ABCDEF\n",
		},
		{
			"empty",
			nil,
			config.OutputConfig{},
			"",
		},
	}

	for _, s := range scenarios {
		t.Run(s.name, func(t *testing.T) {
			assert.Equal(t, s.expected, FormatBytes(s.words, s.cfg))
		})
	}
}

func TestFormatState(t *testing.T) {
	assert.Equal(t,
		"06add2b439eac9e120ac9b777d1cbf81",
		FormatState([]uint64{0x20ac9b777d1cbf81, 0x06add2b439eac9e1}),
	)
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "ok", Verdict(true, "ok", "fail", false))
	assert.Equal(t, "fail", Verdict(false, "ok", "fail", false))

	colored := Verdict(true, "ok", "fail", true)
	assert.Contains(t, colored, "\x1b[32m")
	assert.Contains(t, colored, "ok")

	assert.Contains(t, Verdict(false, "ok", "fail", true), "\x1b[31m")
}
