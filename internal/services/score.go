package services

import (
	"regexp"
	"strconv"
)

var (
	labeledScorePattern = regexp.MustCompile(`(?i)SCORE:\s*(\d+)\s*%`)
	anyPercentPattern   = regexp.MustCompile(`(\d+)\s*%`)
)

// leadingWindow bounds the fallback percentage search to the start of the
// report, where the score line is expected to appear.
const leadingWindow = 200

// ParseReportScore pulls the self-reported match score out of the LLM's
// report text. The report is an untrusted, weakly structured contract: first
// try the literal "SCORE: N%" line, then any "N%" within the leading window,
// and default to 0. It never fails.
func ParseReportScore(reportText string) float64 {
	if m := labeledScorePattern.FindStringSubmatch(reportText); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}

	head := reportText
	if len(head) > leadingWindow {
		head = head[:leadingWindow]
	}
	if m := anyPercentPattern.FindStringSubmatch(head); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}

	return 0
}

// ReconcileScore picks the display score for one candidate. The LLM's
// self-reported score is skills-aware and wins when present; the embedding
// similarity is the fallback signal when the LLM omitted or malformed its
// score line. Pure and deterministic.
func ReconcileScore(reportText string, semanticScore float64) float64 {
	if parsed := ParseReportScore(reportText); parsed > 0 {
		return parsed
	}
	return semanticScore
}
