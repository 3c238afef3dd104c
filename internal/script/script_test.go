package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-arcade/ordered/pkg/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `
# header comment
set a 1
SET b two words   # trailing comment

get a
del b
reserve 10
dump
`
	ops, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, ops, 6)

	assert.Equal(t, Op{Line: 3, Name: "set", Args: []string{"a", "1"}}, ops[0])
	assert.Equal(t, "set b two words", ops[1].String())
	assert.Equal(t, 4, ops[1].Line)
	assert.Equal(t, "dump", ops[5].Name)
}

func TestParse_Hash(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []Op
	}{
		{"value with hash", "set color #ff0000", []Op{{Line: 1, Name: "set", Args: []string{"color", "#ff0000"}}}},
		{"key with hash", "get #tag", []Op{{Line: 1, Name: "get", Args: []string{"#tag"}}}},
		{"lone hash starts comment", "set color #ff0000 # red", []Op{{Line: 1, Name: "set", Args: []string{"color", "#ff0000"}}}},
		{"indented comment line", "   #set a 1\nlen", []Op{{Line: 2, Name: "len", Args: []string{}}}},
		{"comment without space", "#len", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops, err := Parse(strings.NewReader(tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, ops)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown op", "frob a", `line 1: unknown operation "frob"`},
		{"set without value", "set a", "line 1: set needs at least 2 arguments, got 1"},
		{"get with extra args", "\nget a b", "line 2: get takes 1 arguments, got 2"},
		{"bad reserve", "reserve -4", `line 1: reserve needs a non-negative count, got "-4"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func run(t *testing.T, src string) string {
	t.Helper()
	ops, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	var out bytes.Buffer
	r := &Runner{Map: orderedmap.New[string, string](), Out: &out, Verify: true}
	require.NoError(t, r.Run(ops))
	return out.String()
}

func TestRunner(t *testing.T) {
	t.Run("update keeps order", func(t *testing.T) {
		got := run(t, "set a 1\nset b 2\nset a 3\nget a\ndump")
		assert.Equal(t, "a: new\nb: new\na: \"1\" -> \"3\"\n3\na=3\nb=2\n", got)
	})

	t.Run("stable removal", func(t *testing.T) {
		got := run(t, "set a 1\nset b 2\nset c 3\ndel b\ndel b\ndump")
		assert.Equal(t, "a: new\nb: new\nc: new\nremoved b=2\n<absent>\na=1\nc=3\n", got)
	})

	t.Run("reinsert moves to end", func(t *testing.T) {
		got := run(t, "set a 1\nset b 2\ndel a\nset a 9\ndump\nindex a\nhas z")
		assert.Equal(t, "a: new\nb: new\nremoved a=1\na: new\nb=2\na=9\n1\nfalse\n", got)
	})

	t.Run("hash in value", func(t *testing.T) {
		got := run(t, "set color #ff0000\nget color")
		assert.Equal(t, "color: new\n#ff0000\n", got)
	})

	t.Run("capacity", func(t *testing.T) {
		got := run(t, "reserve 10\nset a 1\nset b 2\nlen\nshrink\ncap\nclear\nlen")
		assert.Equal(t, "a: new\nb: new\n2\n2\n0\n", got)
	})
}

type recordingLogger struct {
	debugs int
}

func (l *recordingLogger) Info(...any) {}
func (l *recordingLogger) Infow(string, ...any) {}
func (l *recordingLogger) Debug(...any) {}
func (l *recordingLogger) Debugw(string, ...any) { l.debugs++ }
func (l *recordingLogger) Warn(...any) {}
func (l *recordingLogger) Warnw(string, ...any) {}
func (l *recordingLogger) Error(...any) {}
func (l *recordingLogger) Errorw(string, ...any) {}

func TestRunner_Logs(t *testing.T) {
	ops, err := Parse(strings.NewReader("set a 1\nlen"))
	require.NoError(t, err)

	rec := &recordingLogger{}
	r := &Runner{Map: orderedmap.New[string, string](), Out: &bytes.Buffer{}, Log: rec}
	require.NoError(t, r.Run(ops))
	assert.Equal(t, 2, rec.debugs)
}
