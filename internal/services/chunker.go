package services

import (
	"strings"
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText splits text into chunks of at most maxChunkSize characters,
// preferring paragraph boundaries. Oversized paragraphs are split hard. Used
// to keep embedding calls under the provider's input limit.
func (tc *textChunker) ChunkText(text string, maxChunkSize int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= maxChunkSize {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		// Hard-split paragraphs that alone exceed the limit.
		for len(para) > maxChunkSize {
			flush()
			chunks = append(chunks, para[:maxChunkSize])
			para = para[maxChunkSize:]
		}
		if para == "" {
			continue
		}

		if current.Len()+len(para)+2 > maxChunkSize {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}

	flush()
	return chunks
}
