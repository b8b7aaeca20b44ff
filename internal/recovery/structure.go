package recovery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var (
	literalString = regexp.MustCompile(`\(([^)]+)\)`)
	streamBody    = regexp.MustCompile(`(?s)stream\s*(.*?)\s*endstream`)
	objectBody    = regexp.MustCompile(`(?s)\d+\s+\d+\s+obj\s*(.*?)\s*endobj`)
	asciiLetter   = regexp.MustCompile(`[A-Za-z]`)
)

// structurePass is one container-marker extraction pass.
type structurePass struct {
	name string
	run  func(string) string
}

var structurePasses = []structurePass{
	{name: "literal", run: scanLiterals},
	{name: "stream", run: func(s string) string { return scanBlocks(streamBody, s) }},
	{name: "object", run: func(s string) string { return scanBlocks(objectBody, s) }},
}

// ScanStructure reads at most window bytes of buf, maps each byte to one
// character and looks for text inside container markers: parenthesised
// literal strings, then stream bodies, then indirect objects. The first pass
// that yields text wins. Unbalanced markers simply do not match.
func ScanStructure(buf []byte, window int) string {
	_, text := scanStructure(buf, window)
	return text
}

func scanStructure(buf []byte, window int) (string, string) {
	if window <= 0 || len(buf) == 0 {
		return "", ""
	}
	if window < len(buf) {
		buf = buf[:window]
	}

	text := latin1String(buf)
	for _, pass := range structurePasses {
		if out := pass.run(text); out != "" {
			return pass.name, out
		}
	}
	return "", ""
}

// scanLiterals collects parenthesised operands longer than two characters
// that contain at least one letter.
func scanLiterals(s string) string {
	var parts []string
	for _, m := range literalString.FindAllString(s, -1) {
		inner := strings.NewReplacer("(", "", ")", "").Replace(m)
		if utf8.RuneCountInString(inner) <= 2 || !asciiLetter.MatchString(inner) {
			continue
		}
		parts = append(parts, inner)
	}
	return strings.Join(parts, " ")
}

// scanBlocks returns the letter runs of the first delimited block that has any.
func scanBlocks(re *regexp.Regexp, s string) string {
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		runs := letterRun.FindAllString(m[1], -1)
		if len(runs) > 0 {
			return strings.Join(runs, " ")
		}
	}
	return ""
}

// latin1String maps every byte to the rune of the same value. ISO-8859-1
// decoding cannot fail, so the error path only guards against misuse.
func latin1String(buf []byte) string {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(buf)
	if err != nil {
		return string(buf)
	}
	return string(out)
}
