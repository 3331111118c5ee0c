package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apierrors "github.com/diogo/askweb/internal/errors"
)

// readUpload parses the multipart body recorded by the mock
func readUpload(t *testing.T, mock *mockHTTPClient) (field, fileName string, data []byte) {
	t.Helper()

	_, params, err := mime.ParseMediaType(mock.lastReq.Header.Get("Content-Type"))
	if err != nil {
		t.Fatalf("bad content type: %v", err)
	}

	reader := multipart.NewReader(bytes.NewReader(mock.reqBody), params["boundary"])
	part, err := reader.NextPart()
	if err != nil {
		t.Fatalf("no multipart part: %v", err)
	}
	data, _ = io.ReadAll(part)
	return part.FormName(), part.FileName(), data
}

func TestSummarizePDF(t *testing.T) {
	mock := &mockHTTPClient{body: `{"ok":true,"summary":"A short report."}`}
	client, _ := NewClient("http://localhost:5000", WithHTTPClient(mock))

	resp, err := client.SummarizePDF(context.Background(), "report.pdf", strings.NewReader("%PDF-1.4 body"))
	if err != nil {
		t.Fatalf("SummarizePDF() error = %v", err)
	}
	if resp.Text() != "A short report." {
		t.Errorf("Text() = %q", resp.Text())
	}

	if mock.lastReq.URL.Path != "/pdf" {
		t.Errorf("path = %s, want /pdf", mock.lastReq.URL.Path)
	}
	if !strings.HasPrefix(mock.lastReq.Header.Get("Content-Type"), "multipart/form-data") {
		t.Errorf("Content-Type = %s", mock.lastReq.Header.Get("Content-Type"))
	}

	field, name, data := readUpload(t, mock)
	if field != "pdf" {
		t.Errorf("field = %q, want pdf", field)
	}
	if name != "report.pdf" {
		t.Errorf("file name = %q", name)
	}
	if string(data) != "%PDF-1.4 body" {
		t.Errorf("data = %q", data)
	}
}

func TestSummarizePDF_Fallback(t *testing.T) {
	mock := &mockHTTPClient{status: 400, body: `{"ok":false}`}
	client, _ := NewClient("http://localhost:5000", WithHTTPClient(mock))

	resp, err := client.SummarizePDF(context.Background(), "x.pdf", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("SummarizePDF() error = %v", err)
	}
	if resp.Text() != "No summary" {
		t.Errorf("Text() = %q, want No summary", resp.Text())
	}
}

func TestSummarizePDF_NilReader(t *testing.T) {
	client, _ := NewClient("http://localhost:5000", WithHTTPClient(&mockHTTPClient{}))

	_, err := client.SummarizePDF(context.Background(), "x.pdf", nil)
	if !errors.Is(err, apierrors.ErrNoFile) {
		t.Errorf("err = %v, want ErrNoFile", err)
	}
}

func TestSummarizePDFFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	if err := os.WriteFile(path, []byte("%PDF"), 0o600); err != nil {
		t.Fatal(err)
	}

	mock := &mockHTTPClient{body: `{"summary":"ok"}`}
	client, _ := NewClient("http://localhost:5000", WithHTTPClient(mock))

	if _, err := SummarizePDFFile(context.Background(), client, path); err != nil {
		t.Fatalf("SummarizePDFFile() error = %v", err)
	}

	_, name, _ := readUpload(t, mock)
	if name != "report.pdf" {
		t.Errorf("file name = %q, want base name", name)
	}

	_, err := SummarizePDFFile(context.Background(), client, filepath.Join(dir, "missing.pdf"))
	if err == nil || !strings.HasPrefix(err.Error(), "failed to open file") {
		t.Errorf("err = %v, want open failure", err)
	}
	if mock.calls != 1 {
		t.Errorf("missing file should not reach the network, calls = %d", mock.calls)
	}
}
