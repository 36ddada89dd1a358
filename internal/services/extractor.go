package services

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ErrUnsupportedFormat is returned for any resume whose filename does not
// end in one of the supported extensions. The check is case-sensitive.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// TextExtractor extracts plain text from a stored resume file.
type TextExtractor interface {
	ExtractText(filePath string) (string, error)
}

// ExtractorSelector picks a TextExtractor for a filename. It exists so
// handlers can be tested without real documents on disk.
type ExtractorSelector func(filename string) (TextExtractor, error)

// ExtractorForFilename dispatches on the file extension exactly once, at the
// upload boundary; downstream code only ever sees the TextExtractor.
func ExtractorForFilename(filename string) (TextExtractor, error) {
	switch {
	case strings.HasSuffix(filename, ".pdf"):
		return &pdfExtractor{}, nil
	case strings.HasSuffix(filename, ".docx"):
		return &docxExtractor{}, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

type pdfExtractor struct{}

func (e *pdfExtractor) ExtractText(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
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
			// A page with no extractable text contributes nothing
			continue
		}

		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}

type docxExtractor struct{}

func (e *docxExtractor) ExtractText(filePath string) (string, error) {
	doc, err := docx.ReadDocxFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open DOCX: %w", err)
	}
	defer doc.Close()

	return docxParagraphs(doc.Editable().GetContent())
}

// docxParagraphs walks the document XML collecting the text runs of each
// paragraph, then joins paragraphs with newlines.
func docxParagraphs(content string) (string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var paragraphs []string
	var current strings.Builder
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse DOCX content: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				paragraphs = append(paragraphs, current.String())
				current.Reset()
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return strings.Join(paragraphs, "\n"), nil
}
