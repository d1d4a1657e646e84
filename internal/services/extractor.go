package services

import (
	"archive/zip"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FileFormat is the closed set of résumé formats the extractor understands.
// Adding a format means adding a variant here plus one extract method.
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatPDF
	FormatDOCX
)

// ClassifyFormat maps a filename to its format purely by extension.
func ClassifyFormat(filename string) FileFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

type TextExtractor interface {
	ExtractText(path string, filename string) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// ExtractText implements TextExtractor. Unknown extensions fail with
// ErrUnsupportedFormat; parser failures fail with ExtractionError. Neither is
// retried.
func (e *textExtractor) ExtractText(path string, filename string) (string, error) {
	switch ClassifyFormat(filename) {
	case FormatPDF:
		text, err := e.extractPDF(path)
		if err != nil {
			return "", &ExtractionError{Filename: filename, Err: err}
		}
		return text, nil
	case FormatDOCX:
		text, err := e.extractDOCX(path)
		if err != nil {
			return "", &ExtractionError{Filename: filename, Err: err}
		}
		return text, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// extractPDF concatenates per-page plain text in page order, no separator.
func (e *textExtractor) extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("failed to read page %d: %w", pageIndex, err)
		}

		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

var xmlTagPattern = regexp.MustCompile(`<[^>]+>`)

var xmlEntityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&apos;", "'",
)

// extractDOCX reads word/document.xml out of the docx zip archive and joins
// paragraph texts with a newline.
func (e *textExtractor) extractDOCX(path string) (string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer zr.Close()

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("failed to open document.xml: %w", err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("failed to read document.xml: %w", err)
			}
			break
		}
	}

	if len(docXML) == 0 {
		return "", fmt.Errorf("no document.xml found in docx")
	}

	content := string(docXML)
	content = strings.ReplaceAll(content, "</w:p>", "\n")
	content = strings.ReplaceAll(content, "<w:tab/>", "\t")
	content = xmlTagPattern.ReplaceAllString(content, "")
	content = xmlEntityReplacer.Replace(content)

	// One line per paragraph, blank paragraphs dropped.
	var paragraphs []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paragraphs = append(paragraphs, line)
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
