package presentation

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/nPaBwaYT/kalyna/config"
	"github.com/nPaBwaYT/kalyna/cripta"
	"github.com/samber/lo"
)

const defaultBytesPerLine = 16

// FormatBytes prints the canonical bytes of words as hex, BytesPerLine bytes
// per line, each line indented by Indent spaces and terminated by a newline
func FormatBytes(words []uint64, cfg config.OutputConfig) string {
	perLine := cfg.BytesPerLine
	if perLine <= 0 {
		perLine = defaultBytesPerLine
	}

	byteFormat := "%02X"
	if cfg.Lowercase {
		byteFormat = "%02x"
	}

	indent := strings.Repeat(" ", max(cfg.Indent, 0))

	lines := lo.Map(lo.Chunk(cripta.WordsToBytes(words), perLine), func(line []byte, _ int) string {
		hexBytes := lo.Map(line, func(b byte, _ int) string {
			return fmt.Sprintf(byteFormat, b)
		})
		return indent + strings.Join(hexBytes, "") + "\n"
	})

	return strings.Join(lines, "")
}

// FormatState prints words most significant first, 16 hex digits each
func FormatState(words []uint64) string {
	var sb strings.Builder
	for i := len(words) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "%016x", words[i])
	}
	return sb.String()
}

// Verdict returns okText or failText, green or red when colored is set
func Verdict(ok bool, okText, failText string, colored bool) string {
	text, attr := failText, color.FgRed
	if ok {
		text, attr = okText, color.FgGreen
	}

	if !colored {
		return text
	}

	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(text)
}
