package recovery

import (
	"regexp"
	"strings"
)

// minByteRunMatch is the shortest match kept by the byte-run scan.
const minByteRunMatch = 4

// letterRun matches runs of letters and whitespace of at least ten characters.
// It is shared by the byte-run scan and the structure passes.
var letterRun = regexp.MustCompile(`[A-Za-z\s]{10,}`)

// byteRunPatterns are applied independently and their matches unioned, in this order.
var byteRunPatterns = []*regexp.Regexp{
	letterRun,
	regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`),
	regexp.MustCompile(`[A-Za-z]+(?:\s+[A-Za-z]+)*\s*[0-9]{4}`),
	regexp.MustCompile(`[A-Za-z]+(?:\s+[A-Za-z]+)*\s*[A-Z]{2,}`),
	regexp.MustCompile(`[A-Za-z]+(?:\s+[A-Za-z]+)*\s*[0-9]{1,2}/[0-9]{1,2}/[0-9]{2,4}`),
}

// RecoverByteRuns scans the first head bytes and the last tail bytes of buf
// for natural-language runs. Matches are deduplicated by exact string, kept in
// first-seen order and joined with single spaces. An empty result is normal
// and means the caller should fall back to the next strategy.
func RecoverByteRuns(buf []byte, head, tail int) string {
	seen := make(map[string]struct{})
	var parts []string

	for _, window := range [][]byte{headWindow(buf, head), tailWindow(buf, tail)} {
		if len(window) == 0 {
			continue
		}
		for _, re := range byteRunPatterns {
			for _, m := range re.FindAll(window, -1) {
				// Every pattern is ASCII-only, so bytes and characters agree.
				if len(m) < minByteRunMatch {
					continue
				}
				s := string(m)
				if _, ok := seen[s]; ok {
					continue
				}
				seen[s] = struct{}{}
				parts = append(parts, s)
			}
		}
	}

	return strings.Join(parts, " ")
}

// headWindow returns at most n leading bytes of buf.
func headWindow(buf []byte, n int) []byte {
	if n <= 0 {
		return nil
	}
	if n > len(buf) {
		n = len(buf)
	}
	return buf[:n]
}

// tailWindow returns at most n trailing bytes of buf.
func tailWindow(buf []byte, n int) []byte {
	if n <= 0 {
		return nil
	}
	if n > len(buf) {
		n = len(buf)
	}
	return buf[len(buf)-n:]
}
