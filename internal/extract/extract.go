// Package extract pulls plain text out of resume and job description documents.
package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	FormatPDF  = ".pdf"
	FormatDOCX = ".docx"
	FormatText = ".txt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrExtractionFailure = errors.New("text extraction failed")
)

var (
	xmlTags     = regexp.MustCompile(`<[^>]+>`)
	inlineSpace = regexp.MustCompile(`[ \t\f\v\x{00A0}]+`)
)

// Format returns the lowercased extension of name.
func Format(name string) string {
	return strings.ToLower(filepath.Ext(strings.TrimSpace(name)))
}

// Supported reports whether name has an extractable extension. Plain text is
// accepted only when allowText is set.
func Supported(name string, allowText bool) bool {
	switch Format(name) {
	case FormatPDF, FormatDOCX:
		return true
	case FormatText:
		return allowText
	default:
		return false
	}
}

// ExtractText reads the file at path and returns its text.
func ExtractText(path string) (string, error) {
	if !Supported(path, true) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, Format(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %w", ErrExtractionFailure, path, err)
	}

	return ExtractBytes(path, data)
}

// ExtractBytes returns the text of an in-memory document; name selects the format.
func ExtractBytes(name string, data []byte) (string, error) {
	var (
		text string
		err  error
	)

	switch format := Format(name); format {
	case FormatPDF:
		text, err = pdfText(data)
	case FormatDOCX:
		text, err = docxText(data)
	case FormatText:
		text = string(data)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExtractionFailure, filepath.Base(name), err)
	}

	return tidy(text), nil
}

func pdfText(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed object streams
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		for _, row := range rows {
			for _, word := range row.Content {
				b.WriteString(word.S)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String(), nil
}

func docxText(data []byte) (string, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	for _, f := range archive.File {
		if f.Name != "word/document.xml" {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()

		raw, err := io.ReadAll(rc)
		if err != nil {
			return "", err
		}
		return documentXMLText(string(raw)), nil
	}

	return "", errors.New("word/document.xml not found")
}

func documentXMLText(doc string) string {
	doc = strings.ReplaceAll(doc, "</w:p>", "\n")
	doc = strings.ReplaceAll(doc, "<w:br/>", "\n")
	doc = strings.ReplaceAll(doc, "<w:tab/>", "\t")
	doc = xmlTags.ReplaceAllString(doc, "")
	return html.UnescapeString(doc)
}

// tidy collapses inline whitespace and trims every line, keeping blank
// lines since they separate resume entries.
func tidy(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(inlineSpace.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
