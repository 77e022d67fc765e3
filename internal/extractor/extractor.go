package extractor

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dgallion1/docsight/internal/fragment"
)

// Result is the output of text extraction: positioned fragments in document
// order plus summary statistics.
type Result struct {
	Fragments []fragment.TextFragment `json:"-"`
	Stats     fragment.Stats          `json:"statistics"`
}

// source converts raw document bytes into text fragments.
type source interface {
	extract(data []byte, filename string) ([]fragment.TextFragment, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".csv":      true,
	".html":     true,
	".htm":      true,
	".pdf":      true,
	".docx":     true,
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

func forFile(filename string) source {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt":
		return &textSource{}
	case ".md", ".markdown":
		return &markdownSource{}
	case ".csv":
		return &csvSource{}
	case ".html", ".htm":
		return &htmlSource{}
	case ".pdf":
		return &pdfSource{}
	case ".docx":
		return &docxSource{}
	default:
		return nil
	}
}

// Extract converts raw document bytes into positioned text fragments.
// Unsupported or corrupt inputs yield an empty result; extraction never
// surfaces an error to callers.
func Extract(data []byte, filename string, log *slog.Logger) Result {
	src := forFile(filename)
	if src == nil {
		log.Warn("unsupported file type", "filename", filename)
		return Result{Stats: fragment.Summarize(nil)}
	}

	frags, err := safeExtract(src, data, filename)
	if err != nil {
		log.Warn("extraction failed", "filename", filename, "error", err)
		return Result{Stats: fragment.Summarize(nil)}
	}

	fragment.SortByPosition(frags)
	return Result{
		Fragments: frags,
		Stats:     fragment.Summarize(frags),
	}
}

// safeExtract shields callers from panics in format libraries on malformed
// input (the PDF content-stream reader is known to panic on some files).
func safeExtract(src source, data []byte, filename string) (frags []fragment.TextFragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			frags = nil
			err = fmt.Errorf("extract %s: panic: %v", filename, r)
		}
	}()
	return src.extract(data, filename)
}
