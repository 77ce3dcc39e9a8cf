package services

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/Adwait4291/GroqResume/internal/apperr"
)

type PDFParserService interface {
	ExtractText(data []byte) (string, error)
}

type pdfParserService struct {
	logger *zap.Logger
}

func NewPDFParserService(logger *zap.Logger) PDFParserService {
	return &pdfParserService{logger: logger}
}

// ExtractText pulls the plain text out of an in-memory PDF. Pages that fail
// to yield text are skipped; only a document with no text at all is an error.
func (p *pdfParserService) ExtractText(data []byte) (text string, err error) {
	// The underlying parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			err = apperr.Newf(apperr.KindExtraction, "failed to read PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperr.Wrap(apperr.KindExtraction, "failed to read PDF", err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()
	p.logger.Debug("reading PDF", zap.Int("pages", totalPage))

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil || strings.TrimSpace(pageText) == "" {
			p.logger.Warn("no text extracted from page", zap.Int("page", pageIndex))
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	text = CleanText(textBuilder.String())
	if text == "" {
		return "", apperr.New(apperr.KindExtractionEmpty, "no text content found in PDF")
	}

	p.logger.Info("extracted text from PDF",
		zap.Int("pages", totalPage),
		zap.Int("chars", len(text)))

	return text, nil
}

var blankLinesRe = regexp.MustCompile(`\n\s*\n`)

// CleanText collapses runs of blank lines into a single blank line and trims
// the surrounding whitespace.
func CleanText(text string) string {
	return strings.TrimSpace(blankLinesRe.ReplaceAllString(text, "\n\n"))
}
