package chat

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/askweb/internal/api"
	"github.com/diogo/askweb/internal/models"
)

func writePDF(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 test"), 0o600))
	return path
}

func TestPdfUpload_EmptySelection(t *testing.T) {
	client := &api.MockChatClient{}
	w := newTestWidget(client, VoiceOptions{})

	assert.Nil(t, w.PDF.Select(""))
	assert.Nil(t, w.PDF.Select("   "))
	assert.Equal(t, 0, w.Log.Len())
	assert.Equal(t, 0, client.PDFCalls)
}

func TestPdfUpload_NoticeBeforeResponse(t *testing.T) {
	client := &api.MockChatClient{SummaryVal: &models.SummaryResponse{Summary: "Quarterly numbers."}}
	w := newTestWidget(client, VoiceOptions{})
	path := writePDF(t, "report.pdf")

	cmd := w.PDF.Select(path)
	require.NotNil(t, cmd)

	// Rendered before the request has run
	assert.Equal(t, 0, client.PDFCalls)
	assert.Equal(t, []string{"user:Uploaded PDF: report.pdf", "bot:"}, texts(w.Log))

	settle(w, cmd)

	assert.Equal(t, []string{"user:Uploaded PDF: report.pdf", "bot:Quarterly numbers."}, texts(w.Log))
	assert.Equal(t, "report.pdf", client.LastFileName)
	assert.Equal(t, "%PDF-1.4 test", string(client.LastFileData))
}

func TestPdfUpload_DoesNotLockControls(t *testing.T) {
	client := &api.MockChatClient{SummaryVal: &models.SummaryResponse{Summary: "s"}}
	w := newTestWidget(client, VoiceOptions{})

	cmd := w.PDF.Select(writePDF(t, "a.pdf"))
	assert.False(t, w.Controls.InputDisabled)
	assert.False(t, w.Controls.SendDisabled)
	settle(w, cmd)
}

func TestPdfUpload_Fallback(t *testing.T) {
	client := &api.MockChatClient{SummaryVal: &models.SummaryResponse{}}
	w := newTestWidget(client, VoiceOptions{})

	settle(w, w.PDF.Select(writePDF(t, "a.pdf")))

	assert.Equal(t, "No summary", w.LastReply())
}

func TestPdfUpload_Errors(t *testing.T) {
	t.Run("transport", func(t *testing.T) {
		client := &api.MockChatClient{SummaryErr: errors.New("connection refused")}
		w := newTestWidget(client, VoiceOptions{})

		settle(w, w.PDF.Select(writePDF(t, "a.pdf")))

		assert.Equal(t, []string{"user:Uploaded PDF: a.pdf", "bot:PDF error: connection refused"}, texts(w.Log))
		assert.Equal(t, 0, w.Typing.Active())
	})

	t.Run("missing file", func(t *testing.T) {
		client := &api.MockChatClient{}
		w := newTestWidget(client, VoiceOptions{})

		settle(w, w.PDF.Select(filepath.Join(t.TempDir(), "gone.pdf")))

		last := w.LastReply()
		assert.True(t, strings.HasPrefix(last, "PDF error: "), last)
		assert.Equal(t, 0, client.PDFCalls)
		assert.Equal(t, 2, w.Log.Len())
	})
}
