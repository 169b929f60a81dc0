package iochan_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arr4n/befunge98/iochan"
)

func TestReadLineSeededThenHost(t *testing.T) {
	in := iochan.NewInput([]string{"first", "second"}, strings.NewReader("third\n"))

	l, ok := in.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "first", l)

	l, ok = in.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "second", l)

	l, ok = in.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "third", l)

	_, ok = in.ReadLine()
	assert.False(t, ok)
}

func TestReadLineNoHost(t *testing.T) {
	in := iochan.NewInput(nil, nil)
	_, ok := in.ReadLine()
	assert.False(t, ok)
}

func TestReadRuneConsumesLineByLine(t *testing.T) {
	in := iochan.NewInput([]string{"ab"}, nil)
	r, ok := in.ReadRune()
	require.True(t, ok)
	assert.Equal(t, 'a', r)

	r, ok = in.ReadRune()
	require.True(t, ok)
	assert.Equal(t, 'b', r)

	_, ok = in.ReadRune()
	assert.False(t, ok)
}

func TestReadRuneEmptyLineIsNewline(t *testing.T) {
	in := iochan.NewInput([]string{""}, nil)
	r, ok := in.ReadRune()
	require.True(t, ok)
	assert.Equal(t, '\n', r)
}

func TestSeedAppends(t *testing.T) {
	in := iochan.NewInput([]string{"a"}, nil)
	in.Seed("b")
	l, _ := in.ReadLine()
	assert.Equal(t, "a", l)
	l, _ = in.ReadLine()
	assert.Equal(t, "b", l)
}

func TestOutputWriteRuneIsRaw(t *testing.T) {
	var buf bytes.Buffer
	out := iochan.NewOutput(&buf)
	require.NoError(t, out.WriteRune(150)) // non-printable, must not be substituted
	assert.Equal(t, string(rune(150)), buf.String())
}

func TestOutputWriteInt(t *testing.T) {
	var buf bytes.Buffer
	out := iochan.NewOutput(&buf)
	require.NoError(t, out.WriteInt(-42))
	assert.Equal(t, "-42 ", buf.String())
}

func TestOutputWriteBlock(t *testing.T) {
	var buf bytes.Buffer
	out := iochan.NewOutput(&buf)
	require.NoError(t, out.WriteBlock([]string{"abc", "def"}))
	assert.Equal(t, "abc\ndef\n", buf.String())
}
