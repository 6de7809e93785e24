// Package pdfcheck validates uploaded application documents before they are
// accepted into object storage: size, extension, PDF header and page count.
package pdfcheck

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Limits defines the validation limits for a class of PDF uploads.
type Limits struct {
	MaxFileSizeMB int
	MaxPages      int
	KindName      string // for error messages, e.g. "transcript"
}

// DocumentLimits applies to student application uploads: transcripts, test
// reports, statements. Large scans are fine, books are not.
var DocumentLimits = Limits{
	MaxFileSizeMB: 25,
	MaxPages:      60,
	KindName:      "application document",
}

// Result contains the outcome of one validation pass. Error holds a
// user-facing message when Valid is false; the (Result, error) split keeps
// I/O failures apart from rejections.
type Result struct {
	Valid     bool
	PageCount int
	FileSize  int64
	Error     string
}

// ValidateFile validates a multipart PDF upload against the given limits.
func ValidateFile(file *multipart.FileHeader, limits Limits) (*Result, error) {
	result := &Result{FileSize: file.Size}

	maxSize := int64(limits.MaxFileSizeMB) * 1024 * 1024
	if file.Size > maxSize {
		result.Error = fmt.Sprintf("File size exceeds maximum allowed size of %dMB", limits.MaxFileSizeMB)
		return result, nil
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".pdf") {
		result.Error = "Only PDF files are supported"
		return result, nil
	}

	fileContent, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer fileContent.Close()

	content, err := io.ReadAll(fileContent)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if !bytes.HasPrefix(content, []byte("%PDF-")) {
		result.Error = "Invalid PDF file: missing PDF header"
		return result, nil
	}

	pageCount, err := pageCount(content)
	if err != nil {
		result.Error = fmt.Sprintf("Failed to read PDF: %v", err)
		return result, nil
	}
	result.PageCount = pageCount

	if pageCount == 0 {
		result.Error = "PDF has no pages"
		return result, nil
	}
	if pageCount > limits.MaxPages {
		result.Error = fmt.Sprintf("PDF has %d pages, which exceeds the maximum of %d pages for a %s",
			pageCount, limits.MaxPages, limits.KindName)
		return result, nil
	}

	result.Valid = true
	return result, nil
}

func pageCount(content []byte) (int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}
