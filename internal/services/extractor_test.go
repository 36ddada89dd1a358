package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractorForFilename(t *testing.T) {
	t.Run("pdf", func(t *testing.T) {
		extractor, err := ExtractorForFilename("resume.pdf")
		require.NoError(t, err)
		assert.IsType(t, &pdfExtractor{}, extractor)
	})

	t.Run("docx", func(t *testing.T) {
		extractor, err := ExtractorForFilename("resume.docx")
		require.NoError(t, err)
		assert.IsType(t, &docxExtractor{}, extractor)
	})

	unsupported := []string{
		"resume.txt",
		"resume.doc",
		"resume",
		"",
		"resume.PDF",
		"resume.Docx",
		"resume.pdf.txt",
	}
	for _, filename := range unsupported {
		t.Run("rejects "+filename, func(t *testing.T) {
			_, err := ExtractorForFilename(filename)
			assert.ErrorIs(t, err, ErrUnsupportedFormat)
		})
	}
}

func TestDocxParagraphs(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Python developer</w:t></w:r></w:p>
<w:p><w:r><w:t>Skills:</w:t></w:r><w:r><w:t xml:space="preserve"> Flask, SQL</w:t></w:r></w:p>
<w:p></w:p>
</w:body>
</w:document>`

	got, err := docxParagraphs(content)
	require.NoError(t, err)
	assert.Equal(t, "Python developer\nSkills: Flask, SQL\n", got)
}

func TestDocxParagraphsEmptyDocument(t *testing.T) {
	content := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body></w:body></w:document>`

	got, err := docxParagraphs(content)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestDocxParagraphsMalformedContent(t *testing.T) {
	_, err := docxParagraphs("<w:document><w:body><w:p>")
	assert.Error(t, err)
}

func TestPDFExtractorMissingFile(t *testing.T) {
	extractor := &pdfExtractor{}

	_, err := extractor.ExtractText("testdata/does-not-exist.pdf")
	assert.Error(t, err)
}

func TestDocxExtractorMissingFile(t *testing.T) {
	extractor := &docxExtractor{}

	_, err := extractor.ExtractText("testdata/does-not-exist.docx")
	assert.Error(t, err)
}
