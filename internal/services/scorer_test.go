package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGemini serves canned embeddings: exact-text matches first, then a FIFO
// queue for chunked calls.
type fakeGemini struct {
	mu        sync.Mutex
	vectors   map[string][]float32
	queue     [][]float32
	embedErr  error
	text      string
	textErr   error
	embedCall int
}

func (f *fakeGemini) GenerateEmbedding(ctx context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.embedCall++
	if f.embedErr != nil {
		return nil, f.embedErr
	}
	if v, ok := f.vectors[text]; ok {
		return v, nil
	}
	if len(f.queue) > 0 {
		v := f.queue[0]
		f.queue = f.queue[1:]
		return v, nil
	}
	return nil, errors.New("no canned embedding for text")
}

func (f *fakeGemini) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	if f.textErr != nil {
		return "", f.textErr
	}
	return f.text, nil
}

func TestSimilarityIdenticalDirections(t *testing.T) {
	gemini := &fakeGemini{vectors: map[string][]float32{
		"go backend engineer": {1, 0, 0},
		"go developer resume": {2, 0, 0},
	}}
	scorer := NewSemanticScorer(gemini, NewTextChunker())

	score, err := scorer.Similarity(context.Background(), "go backend engineer", "go developer resume")
	require.NoError(t, err)
	assert.InDelta(t, 100, score, 1e-9)
}

func TestSimilarityOrthogonalVectors(t *testing.T) {
	gemini := &fakeGemini{vectors: map[string][]float32{
		"jd": {1, 0},
		"cv": {0, 1},
	}}
	scorer := NewSemanticScorer(gemini, NewTextChunker())

	score, err := scorer.Similarity(context.Background(), "jd", "cv")
	require.NoError(t, err)
	assert.InDelta(t, 0, score, 1e-9)
}

func TestSimilarityNegativeIsNotClamped(t *testing.T) {
	gemini := &fakeGemini{vectors: map[string][]float32{
		"jd": {1, 0},
		"cv": {-1, 0},
	}}
	scorer := NewSemanticScorer(gemini, NewTextChunker())

	score, err := scorer.Similarity(context.Background(), "jd", "cv")
	require.NoError(t, err)
	assert.InDelta(t, -100, score, 1e-9)
}

func TestSimilarityEmbeddingFailure(t *testing.T) {
	gemini := &fakeGemini{embedErr: errors.New("quota exhausted")}
	scorer := NewSemanticScorer(gemini, NewTextChunker())

	_, err := scorer.Similarity(context.Background(), "jd", "cv")
	require.Error(t, err)

	var modelErr *ExternalModelError
	assert.True(t, errors.As(err, &modelErr))
}

func TestSimilarityPoolsChunksOfLongText(t *testing.T) {
	// Resume longer than one embedding request: two chunk embeddings get
	// mean-pooled before the cosine is taken.
	longResume := strings.Repeat("experience with distributed systems\n\n", 300)
	require.Greater(t, len(longResume), embedChunkSize)

	gemini := &fakeGemini{
		vectors: map[string][]float32{"jd": {1, 0}},
		queue:   [][]float32{{1, 0}, {0, 1}},
	}
	scorer := NewSemanticScorer(gemini, NewTextChunker())

	score, err := scorer.Similarity(context.Background(), "jd", longResume)
	require.NoError(t, err)

	// pooled resume vector is (0.5, 0.5); cos with (1, 0) is 1/sqrt(2)
	assert.InDelta(t, 70.71, score, 0.05)
}

func TestCosineSimilarityEdgeCases(t *testing.T) {
	assert.Equal(t, float64(0), cosineSimilarity([]float32{1, 2}, []float32{1}))
	assert.Equal(t, float64(0), cosineSimilarity(nil, nil))
	assert.Equal(t, float64(0), cosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}
