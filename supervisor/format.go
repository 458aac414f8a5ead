package supervisor

import "strings"

// PrintableShot is the Printable-Shot Formatter (§4.6): a diagnostics-only
// approximation of raw bytes. Letters, digits, spaces, and punctuation
// pass through unchanged; newline, tab, and NUL become two-character
// escapes; everything else becomes a single '.'. The result is truncated
// to fit within max, reserving one byte for a terminator the way the
// original fixed-size buffer contract did, even though Go strings carry no
// terminator of their own.
func PrintableShot(data []byte, max int) string {
	if max <= 0 {
		return ""
	}
	budget := max - 1

	var b strings.Builder
	for _, c := range data {
		piece := shotPiece(c)
		if b.Len()+len(piece) > budget {
			break
		}
		b.WriteString(piece)
	}
	return b.String()
}

func shotPiece(c byte) string {
	switch c {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case 0:
		return `\0`
	default:
		if isPrintableASCII(c) {
			return string(c)
		}
		return "."
	}
}

func isPrintableASCII(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}
