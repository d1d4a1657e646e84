package services

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     FileFormat
	}{
		{"resume.pdf", FormatPDF},
		{"Resume.PDF", FormatPDF},
		{"cv.docx", FormatDOCX},
		{"CV.DocX", FormatDOCX},
		{"notes.txt", FormatUnknown},
		{"archive.doc", FormatUnknown},
		{"noextension", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyFormat(tt.filename), "filename %q", tt.filename)
	}
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	extractor := NewTextExtractor()

	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0644))

	_, err := extractor.ExtractText(path, "notes.txt")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractTextCorruptPDF(t *testing.T) {
	extractor := NewTextExtractor()

	path := filepath.Join(t.TempDir(), "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is not a pdf"), 0644))

	_, err := extractor.ExtractText(path, "broken.pdf")
	require.Error(t, err)

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
	assert.Equal(t, "broken.pdf", extractionErr.Filename)
}

func TestExtractTextDOCX(t *testing.T) {
	extractor := NewTextExtractor()

	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Senior Backend Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>Go, Python &amp; distributed systems</w:t></w:r></w:p>
    <w:p></w:p>
    <w:p><w:r><w:t>5 years of experience</w:t></w:r></w:p>
  </w:body>
</w:document>`
	path := writeDocx(t, docXML)

	text, err := extractor.ExtractText(path, "cv.docx")
	require.NoError(t, err)

	// Paragraph texts joined by newline, blank paragraphs dropped.
	assert.Equal(t, "Senior Backend Engineer\nGo, Python & distributed systems\n5 years of experience", text)
}

func TestExtractTextDOCXWithoutDocumentXML(t *testing.T) {
	extractor := NewTextExtractor()

	path := filepath.Join(t.TempDir(), "empty.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	_, err = extractor.ExtractText(path, "empty.docx")

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
}

func TestExtractTextCorruptDOCX(t *testing.T) {
	extractor := NewTextExtractor()

	path := filepath.Join(t.TempDir(), "broken.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))

	_, err := extractor.ExtractText(path, "broken.docx")

	var extractionErr *ExtractionError
	require.True(t, errors.As(err, &extractionErr))
}

func writeDocx(t *testing.T, documentXML string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cv.docx")
	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	return path
}
