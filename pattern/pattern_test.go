package pattern

import (
	"testing"

	"github.com/poiesic/textsearch/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {
	tests := []struct {
		literal string
		want    string
	}{
		{"hello", `hello`},
		{"hello world", `hello\s*world`},
		{"hello world    again", `hello\s*world\s*again`},
		{"  hello world    ", `hello\s*world`},
		{"a.b", `a\.b`},
		{"price (USD)", `price\s*\(USD\)`},
		{"x+y*z", `x\+y\*z`},
		{"中", `中`},
		{"中文", `中\s*文`},
		{"   中 文", `中\s*文`},
		{"中hello", `中\s*hello`},
		{"中文hello", `中\s*文\s*hello`},
		{"中文hello world", `中\s*文\s*hello\s*world`},
		{"hello中", `hello\s*中`},
		{"hello world中文", `hello\s*world\s*中\s*文`},
		{"hello   world 中文 again", `hello\s*world\s*中\s*文\s*again`},
		{"中文hello world世界", `中\s*文\s*hello\s*world\s*世\s*界`},
	}

	for _, tt := range tests {
		t.Run(tt.literal, func(t *testing.T) {
			got, err := Source(tt.literal)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSource_InvalidLiteral(t *testing.T) {
	for _, literal := range []string{"", " ", "      ", "\t\n\r "} {
		_, err := Source(literal)
		assert.ErrorIs(t, err, core.ErrInvalidLiteral, "literal %q", literal)
	}
}

func TestCompile_ExactWord(t *testing.T) {
	m, err := Compile("needle")
	require.NoError(t, err)

	assert.True(t, m.MatchString("needle"))
	assert.True(t, m.MatchString("a needle in a haystack"))
	assert.False(t, m.MatchString("nee dle with junk"), "no separator inside a word")
	assert.False(t, m.MatchString("neXedle"), "extra non-whitespace characters must not match")
	assert.False(t, m.MatchString("NEEDLE"), "matching is case-sensitive by default")
}

func TestCompile_SoftSeparator(t *testing.T) {
	m, err := Compile("A B")
	require.NoError(t, err)

	tests := []struct {
		text string
		want bool
	}{
		{"A B", true},
		{"A  B", true},
		{"A \t\n B", true},
		{"AB", true}, // extraction may drop the space entirely
		{"xxAByy", true},
		{"AxB", false},
		{"A", false},
		{"B A", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, m.MatchString(tt.text), "text %q", tt.text)
	}
}

func TestCompile_CollapsedWhitespace(t *testing.T) {
	// "A  B" and "A B" must compile to the same pattern.
	a, err := Source("A B")
	require.NoError(t, err)
	b, err := Source("A  B")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompile_Metacharacters(t *testing.T) {
	m, err := Compile("1.5 (approx)")
	require.NoError(t, err)

	assert.True(t, m.MatchString("value 1.5  (approx) here"))
	assert.True(t, m.MatchString("1.5(approx)"))
	assert.False(t, m.MatchString("1x5 (approx)"), "dot must be literal")
}

func TestCompile_CJK(t *testing.T) {
	m, err := Compile("中文 hello")
	require.NoError(t, err)

	assert.True(t, m.MatchString("中文hello"))
	assert.True(t, m.MatchString("中 文\nhello"))
	assert.True(t, m.MatchString("前面中文 hello後面"))
	assert.False(t, m.MatchString("中x文hello"))
}

func TestCompile_CaseInsensitive(t *testing.T) {
	m, err := Compile("Hello World", CaseInsensitive())
	require.NoError(t, err)

	assert.True(t, m.MatchString("HELLO\nWORLD"))
	assert.True(t, m.MatchString("helloworld"))
	assert.False(t, m.MatchString("hello wor1d"))
}

func TestMatcher_FindIndex(t *testing.T) {
	m, err := Compile("foo bar")
	require.NoError(t, err)

	start, end, ok := m.FindIndex("xx foo  bar yy")
	require.True(t, ok)
	assert.Equal(t, 3, start)
	assert.Equal(t, 11, end)
	assert.Equal(t, "foo  bar", "xx foo  bar yy"[start:end])

	_, _, ok = m.FindIndex("nothing here")
	assert.False(t, ok)
}

func TestMatcher_String(t *testing.T) {
	m, err := Compile("a b")
	require.NoError(t, err)
	assert.Equal(t, `a\s*b`, m.String())
}
