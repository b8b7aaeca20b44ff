package recovery

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/logger"
)

// longLetterRun is the single heuristic applied to every decoding.
var longLetterRun = regexp.MustCompile(`[A-Za-z\s]{20,}`)

// decoder turns a byte window into text, or fails with ErrUnsupportedEncoding.
type decoder struct {
	name   string
	decode func([]byte) (string, error)
}

// probeDecoders is the fixed probe order. Decoders are built per call since
// x/text decoders carry state.
var probeDecoders = []decoder{
	{name: "utf-8", decode: decodeUTF8},
	{name: "iso-8859-1", decode: decodeLatin1},
	{name: "ascii", decode: decodeASCII},
	{name: "utf-16le", decode: decodeUTF16LE},
}

// ProbeEncodings decodes at most window bytes of buf under each probe
// encoding in turn. The first decoding containing a letter run of twenty or
// more characters wins and its runs are returned space-joined; results are
// never merged across encodings. A window of zero or less probes nothing.
func ProbeEncodings(buf []byte, window int) string {
	_, text := probeEncodings(buf, window)
	return text
}

func probeEncodings(buf []byte, window int) (string, string) {
	if window <= 0 {
		return "", ""
	}
	if window < len(buf) {
		buf = buf[:window]
	}
	if len(buf) == 0 {
		return "", ""
	}

	for _, d := range probeDecoders {
		text, err := d.decode(buf)
		if err != nil {
			logger.Debug("encoding probe %s skipped: %v", d.name, err)
			continue
		}
		matches := longLetterRun.FindAllString(text, -1)
		if len(matches) > 0 {
			return d.name, strings.Join(matches, " ")
		}
	}
	return "", ""
}

func decodeUTF8(buf []byte) (string, error) {
	out, _, err := transform.Bytes(encoding.UTF8Validator, trimPartialRune(buf))
	if err != nil {
		return "", fmt.Errorf("%w: utf-8: %v", domain.ErrUnsupportedEncoding, err)
	}
	return string(out), nil
}

func decodeLatin1(buf []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(buf)
	if err != nil {
		return "", fmt.Errorf("%w: iso-8859-1: %v", domain.ErrUnsupportedEncoding, err)
	}
	return string(out), nil
}

// decodeASCII is strict 7-bit ASCII; x/text has no strict ASCII decoder
// (its us-ascii label maps to windows-1252).
func decodeASCII(buf []byte) (string, error) {
	for i, b := range buf {
		if b >= utf8.RuneSelf {
			return "", fmt.Errorf("%w: ascii: byte 0x%02x at offset %d", domain.ErrUnsupportedEncoding, b, i)
		}
	}
	return string(buf), nil
}

func decodeUTF16LE(buf []byte) (string, error) {
	dec := xunicode.UTF16(xunicode.LittleEndian, xunicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(buf)
	if err != nil {
		return "", fmt.Errorf("%w: utf-16le: %v", domain.ErrUnsupportedEncoding, err)
	}
	return string(out), nil
}

// trimPartialRune drops an incomplete UTF-8 sequence cut off by the window edge.
func trimPartialRune(buf []byte) []byte {
	for i := 1; i <= utf8.UTFMax && i <= len(buf); i++ {
		start := len(buf) - i
		if !utf8.RuneStart(buf[start]) {
			continue
		}
		if !utf8.FullRune(buf[start:]) {
			return buf[:start]
		}
		return buf
	}
	return buf
}
