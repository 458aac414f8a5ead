package supervisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintableShot_Passthrough(t *testing.T) {
	assert.Equal(t, "hello.txt", PrintableShot([]byte("hello.txt"), 64))
}

func TestPrintableShot_Escapes(t *testing.T) {
	assert.Equal(t, `a\nb\tc\0d`, PrintableShot([]byte("a\nb\tc\x00d"), 64))
}

func TestPrintableShot_NonPrintable(t *testing.T) {
	assert.Equal(t, "a.b", PrintableShot([]byte{'a', 0x01, 'b'}, 64))
}

func TestPrintableShot_Truncates(t *testing.T) {
	got := PrintableShot([]byte("abcdefgh"), 4)
	assert.Len(t, got, 3)
	assert.Equal(t, "abc", got)
}

func TestPrintableShot_ZeroMax(t *testing.T) {
	assert.Equal(t, "", PrintableShot([]byte("abc"), 0))
}

func TestPrintableShot_EscapeNotSplit(t *testing.T) {
	// a two-byte escape that would overflow the budget is dropped whole,
	// never emitted as a single dangling backslash.
	got := PrintableShot([]byte("ab\n"), 3)
	assert.Equal(t, "ab", got)
}
