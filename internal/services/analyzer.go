package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"github.com/google/uuid"

	"hiring-copilot/internal/models"
	"hiring-copilot/internal/repositories"
)

// AnalyzerService drives one résumé batch end to end: temp-persist each
// upload, extract its text, score it semantically and through the LLM report,
// reconcile the two scores, persist the report, and rank the batch. A failure
// on one file never aborts the others; it becomes a zero-score error entry so
// the response always has one entry per uploaded file.
type AnalyzerService interface {
	Analyze(ctx context.Context, jobDescription string, files []models.UploadedFile, userID uuid.UUID) []models.CandidateReport
}

type analyzerService struct {
	reportRepo  repositories.ReportRepository
	extractor   TextExtractor
	scorer      SemanticScorer
	generator   ReportGenerator
	index       CandidateIndex
	storage     BatchStorage
	concurrency int
}

func NewAnalyzerService(
	reportRepo repositories.ReportRepository,
	extractor TextExtractor,
	scorer SemanticScorer,
	generator ReportGenerator,
	index CandidateIndex,
	storage BatchStorage,
	concurrency int,
) AnalyzerService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &analyzerService{
		reportRepo:  reportRepo,
		extractor:   extractor,
		scorer:      scorer,
		generator:   generator,
		index:       index,
		storage:     storage,
		concurrency: concurrency,
	}
}

// Analyze implements AnalyzerService.
func (a *analyzerService) Analyze(ctx context.Context, jobDescription string, files []models.UploadedFile, userID uuid.UUID) []models.CandidateReport {
	results := make([]models.CandidateReport, len(files))

	batchDir, err := a.storage.NewBatchDir()
	if err != nil {
		// No scratch space: every file in the batch surfaces the failure.
		for i, file := range files {
			results[i] = errorReport(file.Filename, err)
		}
		return results
	}
	defer a.storage.Cleanup(batchDir)

	sem := make(chan struct{}, a.concurrency)
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		go func(i int, file models.UploadedFile) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = a.processFile(ctx, batchDir, jobDescription, file, userID)
		}(i, file)
	}
	wg.Wait()

	// Best score first; equal scores keep upload order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

func (a *analyzerService) processFile(ctx context.Context, batchDir, jobDescription string, file models.UploadedFile, userID uuid.UUID) models.CandidateReport {
	path, err := a.storage.SaveUpload(batchDir, file.Filename, file.Content)
	if err != nil {
		return errorReport(file.Filename, err)
	}
	defer a.storage.RemoveUpload(path)

	resumeText, err := a.extractor.ExtractText(path, file.Filename)
	if err != nil {
		return errorReport(file.Filename, err)
	}

	// The semantic score and the LLM report are independent; run both before
	// reconciling.
	var (
		wg            sync.WaitGroup
		semanticScore float64
		reportText    string
		scoreErr      error
		reportErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		semanticScore, scoreErr = a.scorer.Similarity(ctx, jobDescription, resumeText)
	}()
	go func() {
		defer wg.Done()
		reportText, reportErr = a.generator.GenerateReport(ctx, jobDescription, resumeText)
	}()
	wg.Wait()

	if scoreErr != nil {
		return errorReport(file.Filename, scoreErr)
	}
	if reportErr != nil {
		return errorReport(file.Filename, reportErr)
	}

	htmlReport := RenderReportHTML(reportText)
	displayScore := ReconcileScore(reportText, semanticScore)

	report := &models.ResumeReport{
		ID:       uuid.New(),
		UserID:   userID,
		Filename: file.Filename,
		Score:    displayScore,
		Report:   htmlReport,
	}
	if err := a.reportRepo.Create(report); err != nil {
		return errorReport(file.Filename, err)
	}

	// Indexing is best-effort; the candidate result stands either way.
	if err := a.index.IndexCandidate(ctx, report.ID, userID, file.Filename, displayScore, resumeText); err != nil {
		log.Printf("⚠️  Failed to index candidate %s: %v\n", file.Filename, err)
	}

	return models.CandidateReport{
		Filename: file.Filename,
		Score:    displayScore,
		Report:   htmlReport,
	}
}

func errorReport(filename string, err error) models.CandidateReport {
	log.Printf("❌ Error processing %s: %v\n", filename, err)
	return models.CandidateReport{
		Filename: filename,
		Score:    0,
		Report:   fmt.Sprintf("<p>Error processing file: %v</p>", err),
	}
}
