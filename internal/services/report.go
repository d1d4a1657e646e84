package services

import (
	"context"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// reportTemperature matches the evaluation model's configured temperature.
const reportTemperature = 0.6

// ReportGenerator produces the structured evaluation report for one candidate
// by a single LLM call. The call is the dominant latency and failure source of
// the whole analysis; it is not retried here.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, jobDescription, resumeText string) (string, error)
}

type reportGenerator struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewReportGenerator(gemini GeminiService) ReportGenerator {
	return &reportGenerator{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// GenerateReport implements ReportGenerator.
func (r *reportGenerator) GenerateReport(ctx context.Context, jobDescription, resumeText string) (string, error) {
	prompt := r.promptBuilder.BuildReportPrompt(jobDescription, resumeText)

	reportText, err := r.gemini.GenerateText(ctx, prompt, reportTemperature)
	if err != nil {
		return "", &ExternalModelError{Op: "report generation", Err: err}
	}

	return reportText, nil
}

// RenderReportHTML converts the LLM's markdown report into display HTML.
// Hard line breaks are kept so single newlines in the report render as <br>.
func RenderReportHTML(markdownText string) string {
	// parser instances are stateful and must not be reused across documents
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.HardLineBreak)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})

	return string(markdown.ToHTML([]byte(markdownText), p, renderer))
}
