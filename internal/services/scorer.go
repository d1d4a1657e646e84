package services

import (
	"context"
	"math"
)

// embedChunkSize keeps a single embedding request comfortably inside the
// provider's input limit; longer documents are chunked and mean-pooled.
const embedChunkSize = 8000

// SemanticScorer computes how well a résumé matches a job description as
// cosine similarity of their embeddings, scaled to a percentage. The score is
// deliberately not clamped: near-opposite embeddings yield a negative value.
type SemanticScorer interface {
	Similarity(ctx context.Context, jobDescription, resumeText string) (float64, error)
}

type semanticScorer struct {
	gemini  GeminiService
	chunker TextChunker
}

func NewSemanticScorer(gemini GeminiService, chunker TextChunker) SemanticScorer {
	return &semanticScorer{
		gemini:  gemini,
		chunker: chunker,
	}
}

// Similarity implements SemanticScorer.
func (s *semanticScorer) Similarity(ctx context.Context, jobDescription, resumeText string) (float64, error) {
	jdVec, err := embedPooled(ctx, s.gemini, s.chunker, jobDescription)
	if err != nil {
		return 0, &ExternalModelError{Op: "job description embedding", Err: err}
	}

	resumeVec, err := embedPooled(ctx, s.gemini, s.chunker, resumeText)
	if err != nil {
		return 0, &ExternalModelError{Op: "resume embedding", Err: err}
	}

	return cosineSimilarity(jdVec, resumeVec) * 100, nil
}

// embedPooled returns the text's embedding, mean-pooling chunk embeddings
// when the text exceeds a single request's budget. All comparisons go through
// the same model, so distances stay meaningful.
func embedPooled(ctx context.Context, gemini GeminiService, chunker TextChunker, text string) ([]float32, error) {
	chunks := chunker.ChunkText(text, embedChunkSize)
	if len(chunks) <= 1 {
		return gemini.GenerateEmbedding(ctx, text)
	}

	var pooled []float64
	for _, chunk := range chunks {
		vec, err := gemini.GenerateEmbedding(ctx, chunk)
		if err != nil {
			return nil, err
		}
		if pooled == nil {
			pooled = make([]float64, len(vec))
		}
		for i := range vec {
			pooled[i] += float64(vec[i])
		}
	}

	mean := make([]float32, len(pooled))
	for i := range pooled {
		mean[i] = float32(pooled[i] / float64(len(chunks)))
	}

	return mean, nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
