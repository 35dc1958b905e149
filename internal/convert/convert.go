// Package convert translates documents between txt, pdf, and docx.
package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"intellidocs-backend/internal/extract"
)

// ErrInvalidInput marks a conversion request the caller can fix.
var ErrInvalidInput = errors.New("invalid input")

const (
	FormatTXT  = "txt"
	FormatPDF  = "pdf"
	FormatDOCX = "docx"
)

var mimeByFormat = map[string]string{
	FormatTXT:  "text/plain; charset=utf-8",
	FormatPDF:  "application/pdf",
	FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Convert transforms the payload from one format to another. It returns the
// converted bytes and their mime type. Conversion always goes through plain
// text, so source formatting beyond paragraphs is not preserved.
func Convert(ctx context.Context, data []byte, fromFormat, toFormat, title string) ([]byte, string, error) {
	from := normalizeFormat(fromFormat)
	to := normalizeFormat(toFormat)

	if _, ok := mimeByFormat[from]; !ok {
		return nil, "", fmt.Errorf("%w: unsupported source format %q", ErrInvalidInput, fromFormat)
	}
	if _, ok := mimeByFormat[to]; !ok {
		return nil, "", fmt.Errorf("%w: unsupported target format %q", ErrInvalidInput, toFormat)
	}
	if from == to {
		return nil, "", fmt.Errorf("%w: source and target formats are the same", ErrInvalidInput)
	}

	text, err := toText(ctx, data, from)
	if err != nil {
		return nil, "", fmt.Errorf("read %s source: %w", from, err)
	}

	var out []byte
	switch to {
	case FormatTXT:
		out = []byte(text)
	case FormatPDF:
		out, err = buildPDF(title, text)
	case FormatDOCX:
		out, err = buildDOCX(text)
	}
	if err != nil {
		return nil, "", fmt.Errorf("build %s output: %w", to, err)
	}
	return out, mimeByFormat[to], nil
}

func toText(ctx context.Context, data []byte, format string) (string, error) {
	if format == FormatTXT {
		return string(data), nil
	}
	return extract.TextFromBytes(ctx, data, mimeByFormat[format], "input."+format)
}

func normalizeFormat(format string) string {
	f := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(format, ".")))
	if f == "doc" {
		return FormatDOCX
	}
	return f
}

// buildPDF renders the text into a simple A4 document via
// github.com/jung-kurt/gofpdf.
func buildPDF(title, text string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	if strings.TrimSpace(title) != "" {
		pdf.SetFont("Helvetica", "B", 16)
		pdf.MultiCell(0, 8, title, "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "", 11)
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			pdf.Ln(4)
			continue
		}
		pdf.MultiCell(0, 5, paragraph, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// buildDOCX writes a minimal OOXML package: one paragraph per input line.
func buildDOCX(text string) ([]byte, error) {
	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n")
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, line := range strings.Split(text, "\n") {
		doc.WriteString(`<w:p><w:r><w:t xml:space="preserve">`)
		if err := xml.EscapeText(&doc, []byte(line)); err != nil {
			return nil, err
		}
		doc.WriteString(`</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		body string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", doc.String()},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, err
		}
		if _, err := w.Write([]byte(part.body)); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
