package vectors

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-errors/errors"
)

// HexError is returned for input that is not a hex word or hex string
type HexError struct {
	Input string
	Err   error
}

func (e *HexError) Error() string {
	return fmt.Sprintf("invalid hex %q: %v", e.Input, e.Err)
}

func (e *HexError) Unwrap() error {
	return e.Err
}

// ParseWords parses 64-bit words written as up to 16 hex digits, with an
// optional 0x prefix
func ParseWords(hexWords []string) ([]uint64, error) {
	words := make([]uint64, 0, len(hexWords))
	for _, hexWord := range hexWords {
		digits := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(hexWord), "0x"), "0X")
		word, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return nil, errors.Wrap(&HexError{Input: hexWord, Err: err}, 0)
		}
		words = append(words, word)
	}
	return words, nil
}

// ParseHexBytes parses a hex byte string such as the one printed by
// presentation.FormatBytes. Whitespace is ignored.
func ParseHexBytes(s string) ([]byte, error) {
	compact := strings.Join(strings.Fields(s), "")
	data, err := hex.DecodeString(compact)
	if err != nil {
		return nil, errors.Wrap(&HexError{Input: s, Err: err}, 0)
	}
	return data, nil
}
