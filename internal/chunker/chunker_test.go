package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	c := New()
	assert.Equal(t, DefaultTargetSize, c.TargetSize())
}

func TestWithTargetSize(t *testing.T) {
	c := New(WithTargetSize(100))
	assert.Equal(t, 100, c.TargetSize())

	// Non-positive sizes keep the default.
	c = New(WithTargetSize(0))
	assert.Equal(t, DefaultTargetSize, c.TargetSize())

	c = New(WithTargetSize(-5))
	assert.Equal(t, DefaultTargetSize, c.TargetSize())
}

func TestChunker_Split_EmptyPage(t *testing.T) {
	c := New()
	assert.Empty(t, c.Split(""))
	assert.Empty(t, c.Split("\n\n\n   \n\n"))
}

func TestChunker_Split_SingleParagraph(t *testing.T) {
	c := New()
	chunks := c.Split("Objeto: aquisição de material de expediente.")
	require.Len(t, chunks, 1)
	assert.Equal(t, "Objeto: aquisição de material de expediente.", chunks[0])
}

func TestChunker_Split_PacksParagraphsGreedily(t *testing.T) {
	c := New(WithTargetSize(25))

	// "alpha" + "\n" + "bravo" is 11 runes, adding "charlie" would make
	// 19, still within 25; "delta tango whiskey" (19) starts a new chunk.
	page := "alpha\n\nbravo\n\ncharlie\n\ndelta tango whiskey"
	chunks := c.Split(page)
	require.Len(t, chunks, 2)
	assert.Equal(t, "alpha\nbravo\ncharlie", chunks[0])
	assert.Equal(t, "delta tango whiskey", chunks[1])
}

func TestChunker_Split_OversizedParagraphKeptWhole(t *testing.T) {
	c := New(WithTargetSize(10))
	long := strings.Repeat("x", 50)
	chunks := c.Split("abc\n\n" + long + "\n\ndef")
	require.Len(t, chunks, 3)
	assert.Equal(t, "abc", chunks[0])
	assert.Equal(t, long, chunks[1])
	assert.Equal(t, "def", chunks[2])
}

func TestChunker_Split_CountsRunesNotBytes(t *testing.T) {
	// "ação" is 4 runes but 6 bytes; with a 9-rune budget two of them
	// plus the joining newline fit in one chunk.
	c := New(WithTargetSize(9))
	chunks := c.Split("ação\n\nação")
	require.Len(t, chunks, 1)
	assert.Equal(t, "ação\nação", chunks[0])
	assert.Equal(t, 9, utf8.RuneCountInString(chunks[0]))
}

func TestChunker_Split_TrimsParagraphWhitespace(t *testing.T) {
	c := New()
	chunks := c.Split("  primeiro  \n\n\n\n  segundo  ")
	require.Len(t, chunks, 1)
	assert.Equal(t, "primeiro\nsegundo", chunks[0])
}

func TestChunker_Split_DefaultBudgetOnRealText(t *testing.T) {
	c := New()
	para := strings.Repeat("Cláusula de habilitação jurídica. ", 20)
	page := strings.Join([]string{para, para, para, para}, "\n\n")

	chunks := c.Split(page)
	require.NotEmpty(t, chunks)
	for _, ch := range chunks {
		// Oversized single paragraphs are allowed, grouped ones are not.
		if strings.Contains(ch, "\n") {
			assert.LessOrEqual(t, utf8.RuneCountInString(ch), DefaultTargetSize)
		}
	}
}
