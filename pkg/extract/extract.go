// Package extract turns uploaded postmortem documents into plain text.
// It supports the formats the import API accepts: PDF, DOCX, HTML, and
// plain text / Markdown. Extraction is pure byte-in text-out; callers fetch
// the document from storage first.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedType indicates the file format has no extractor.
	// Not retryable: the same bytes will always fail.
	ErrUnsupportedType = errors.New("unsupported document type")

	// ErrNoText indicates extraction succeeded structurally but produced
	// no usable text (e.g. an image-only PDF).
	ErrNoText = errors.New("no text content in document")
)

// Service dispatches extraction by document type.
type Service struct{}

// NewService builds the extraction service.
func NewService() *Service {
	return &Service{}
}

// Extract returns the plain text of a document. fileType is the MIME type
// recorded at upload; the file extension is the fallback when the MIME type
// is missing or generic.
func (s *Service) Extract(fileName, fileType string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNoText
	}

	var (
		text string
		err  error
	)
	switch kindOf(fileName, fileType) {
	case kindPDF:
		text, err = extractPDF(data)
	case kindDOCX:
		text, err = extractDOCX(data)
	case kindHTML:
		text, err = extractHTML(data)
	case kindPlain:
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %s (%s)", ErrUnsupportedType, fileName, fileType)
	}
	if err != nil {
		return "", err
	}

	text = normalizeText(text)
	if text == "" {
		return "", ErrNoText
	}
	return text, nil
}

// Supported reports whether a document would be accepted for extraction.
// The API layer uses it to reject unsupported uploads before any session
// state is created.
func Supported(fileName, fileType string) bool {
	return kindOf(fileName, fileType) != kindUnknown
}

type docKind int

const (
	kindUnknown docKind = iota
	kindPDF
	kindDOCX
	kindHTML
	kindPlain
)

func kindOf(fileName, fileType string) docKind {
	switch strings.ToLower(strings.TrimSpace(fileType)) {
	case "application/pdf":
		return kindPDF
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return kindDOCX
	case "text/html":
		return kindHTML
	case "text/plain", "text/markdown":
		return kindPlain
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return kindPDF
	case ".docx":
		return kindDOCX
	case ".html", ".htm":
		return kindHTML
	case ".txt", ".md", ".markdown", ".log":
		return kindPlain
	}
	return kindUnknown
}

// normalizeText strips control bytes and collapses whitespace within lines
// while keeping line breaks, which carry structure the metadata extraction
// prompt relies on (timelines, bullet lists).
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\x00", " ")
	text = strings.ToValidUTF8(text, "")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			// Collapse runs of blank lines into one paragraph break.
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
