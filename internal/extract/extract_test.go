package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func buildTestDocx(t *testing.T, paragraphs []string) []byte {
	t.Helper()
	var doc strings.Builder
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		doc.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(doc.String())); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestTextFromBytesPlainText(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("hello world"), "text/plain; charset=utf-8", "notes.txt")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesPlainTextByExtension(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("hello"), "application/octet-stream", "notes.txt")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "hello" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesDocx(t *testing.T) {
	data := buildTestDocx(t, []string{"First paragraph", "Second paragraph"})

	text, err := TextFromBytes(context.Background(), data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "notes.docx")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "First paragraph\nSecond paragraph" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesDocxSniffedFromZip(t *testing.T) {
	data := buildTestDocx(t, []string{"Sniffed content"})

	// Browsers often report docx uploads as application/zip.
	text, err := TextFromBytes(context.Background(), data, "application/zip", "upload.bin")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "Sniffed content" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesLegacyDocRejected(t *testing.T) {
	// OLE compound file header, the container of binary .doc files.
	ole := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

	_, err := TextFromBytes(context.Background(), ole, "application/msword", "report.doc")
	if !errors.Is(err, ErrLegacyFormat) {
		t.Fatalf("expected ErrLegacyFormat, got %v", err)
	}

	_, err = TextFromBytes(context.Background(), ole, "application/octet-stream", "report.doc")
	if !errors.Is(err, ErrLegacyFormat) {
		t.Fatalf("expected ErrLegacyFormat via extension, got %v", err)
	}
}

func TestTextFromBytesMislabeledDocxAsDoc(t *testing.T) {
	data := buildTestDocx(t, []string{"Renamed but fine"})

	text, err := TextFromBytes(context.Background(), data, "application/msword", "report.doc")
	if err != nil {
		t.Fatalf("TextFromBytes: %v", err)
	}
	if text != "Renamed but fine" {
		t.Fatalf("text = %q", text)
	}
}

func TestTextFromBytesUnsupported(t *testing.T) {
	if _, err := TextFromBytes(context.Background(), []byte("x"), "image/png", "pic.png"); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}

func TestTextFromBytesDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("something/else.xml"); err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	_, err := TextFromBytes(context.Background(), buf.Bytes(), "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "broken.docx")
	if err == nil {
		t.Fatalf("expected error for docx without document.xml")
	}
}

func TestTextFromBytesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := TextFromBytes(ctx, []byte("hello"), "text/plain", "notes.txt"); err == nil {
		t.Fatalf("expected context error")
	}
}
