package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"hiring-copilot/internal/models"
)

// CandidateIndex keeps one embedding per analyzed résumé so past candidates
// can be searched against a new job description. Indexing is best-effort: the
// analyzer logs index failures and keeps going.
type CandidateIndex interface {
	InitCollection() error
	IndexCandidate(ctx context.Context, reportID, userID uuid.UUID, filename string, score float64, resumeText string) error
	SearchCandidates(ctx context.Context, query string, userID uuid.UUID, limit int) ([]models.SearchMatch, error)
}

type candidateIndex struct {
	client         *qdrant.Client
	gemini         GeminiService
	chunker        TextChunker
	collectionName string
	vectorSize     uint64
}

func NewCandidateIndex(urlStr, apiKey, collectionName string, gemini GeminiService, chunker TextChunker) (CandidateIndex, error) {
	// Parse URL to extract host, port, and TLS usage
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// For gRPC client, use port 6334 by default (gRPC port)
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &candidateIndex{
		client:         client,
		gemini:         gemini,
		chunker:        chunker,
		collectionName: collectionName,
		vectorSize:     768, // text-embedding-004 size
	}, nil
}

// InitCollection implements CandidateIndex.
func (c *candidateIndex) InitCollection() error {
	ctx := context.Background()

	exists, err := c.client.CollectionExists(ctx, c.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Println("✅ Candidate collection already exists")
		return nil
	}

	err = c.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: c.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     c.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})

	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant collection '%s' created successfully\n", c.collectionName)
	return nil
}

// IndexCandidate implements CandidateIndex. The résumé embedding is keyed by
// the persisted report's id, so a search hit can be joined back to its report.
func (c *candidateIndex) IndexCandidate(ctx context.Context, reportID, userID uuid.UUID, filename string, score float64, resumeText string) error {
	embedding, err := embedPooled(ctx, c.gemini, c.chunker, resumeText)
	if err != nil {
		return fmt.Errorf("failed to embed resume for indexing: %w", err)
	}

	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(reportID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"report_id": reportID.String(),
			"user_id":   userID.String(),
			"filename":  filename,
			"score":     score,
		}),
	}

	_, err = c.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: c.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert candidate point: %w", err)
	}

	return nil
}

// SearchCandidates implements CandidateIndex. Results are scoped to the
// caller's own reports.
func (c *candidateIndex) SearchCandidates(ctx context.Context, query string, userID uuid.UUID, limit int) ([]models.SearchMatch, error) {
	queryEmbedding, err := embedPooled(ctx, c.gemini, c.chunker, query)
	if err != nil {
		return nil, &ExternalModelError{Op: "query embedding", Err: err}
	}

	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("user_id", userID.String()),
		},
	}

	searchResult, err := c.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: c.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to search candidates: %w", err)
	}

	var matches []models.SearchMatch
	for _, point := range searchResult {
		payload := point.Payload

		match := models.SearchMatch{
			Similarity: point.Score,
		}

		if reportID, ok := payload["report_id"]; ok {
			if val, ok := reportID.GetKind().(*qdrant.Value_StringValue); ok {
				match.ReportID = val.StringValue
			}
		}

		if filename, ok := payload["filename"]; ok {
			if val, ok := filename.GetKind().(*qdrant.Value_StringValue); ok {
				match.Filename = val.StringValue
			}
		}

		if score, ok := payload["score"]; ok {
			if val, ok := score.GetKind().(*qdrant.Value_DoubleValue); ok {
				match.Score = val.DoubleValue
			}
		}

		matches = append(matches, match)
	}

	return matches, nil
}
