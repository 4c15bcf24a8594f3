package resume

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"

	"github.com/skillmatch/job-recommender/internal/util"
)

const (
	defaultTimeout = 30 * time.Second
	userAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	// maxDocumentSize caps resume downloads; anything larger is not a resume.
	maxDocumentSize = 16 << 20
)

// Extraction holds whatever could be mined out of a resume document. The zero
// value means "no resume data" and is a valid input everywhere downstream.
type Extraction struct {
	FullText   string
	Skills     []string
	Education  string
	Experience string
}

func (e Extraction) Empty() bool { return e.FullText == "" }

// Fetcher downloads resume documents and extracts plain text plus structured
// hints from them. Every failure degrades to an empty Extraction; a broken
// resume must never fail the recommendation it belongs to.
type Fetcher struct {
	client       *http.Client
	logger       *zap.Logger
	skillCatalog []string
}

func NewFetcher(logger *zap.Logger, timeout time.Duration, skillCatalog []string) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Fetcher{
		client:       &http.Client{Timeout: timeout},
		logger:       logger,
		skillCatalog: skillCatalog,
	}
}

// Fetch downloads the document at url and extracts its text. Any failure is
// logged and reported as an empty Extraction.
func (f *Fetcher) Fetch(ctx context.Context, url string) Extraction {
	if strings.TrimSpace(url) == "" {
		return Extraction{}
	}

	text, err := f.download(ctx, url)
	if err != nil {
		f.logger.Warn("resume extraction failed",
			zap.String("url", util.TruncateForLog(url, 120)),
			zap.Error(err),
		)
		return Extraction{}
	}
	if strings.TrimSpace(text) == "" {
		f.logger.Warn("no text extracted from resume document")
		return Extraction{}
	}

	return Extraction{
		FullText:   text,
		Skills:     ExtractSkills(text, f.skillCatalog),
		Education:  ExtractEducation(text),
		Experience: ExtractExperience(text),
	}
}

func (f *Fetcher) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("downloading resume: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return "", err
	}

	return extractPDFText(data)
}

// extractPDFText pulls plain text out of a PDF, page by page. A page that
// cannot be parsed is skipped rather than aborting the document.
func extractPDFText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parsing pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(pageText)
		b.WriteString("\n")
	}

	return b.String(), nil
}
