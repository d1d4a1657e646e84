package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkTextShortTextIsSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("a short resume", 1000)
	require.Len(t, chunks, 1)
	assert.Equal(t, "a short resume", chunks[0])
}

func TestChunkTextEmpty(t *testing.T) {
	chunker := NewTextChunker()

	assert.Nil(t, chunker.ChunkText("", 1000))
	assert.Nil(t, chunker.ChunkText("   \n  ", 1000))
}

func TestChunkTextSplitsOnParagraphs(t *testing.T) {
	chunker := NewTextChunker()

	text := strings.Repeat("paragraph of resume content here\n\n", 50)
	chunks := chunker.ChunkText(text, 200)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 200)
		assert.NotEmpty(t, chunk)
	}
}

func TestChunkTextHardSplitsOversizedParagraph(t *testing.T) {
	chunker := NewTextChunker()

	text := strings.Repeat("x", 450)
	chunks := chunker.ChunkText(text, 200)

	require.Len(t, chunks, 3)
	assert.Equal(t, 200, len(chunks[0]))
	assert.Equal(t, 200, len(chunks[1]))
	assert.Equal(t, 50, len(chunks[2]))
}
