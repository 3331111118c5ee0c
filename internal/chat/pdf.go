package chat

import (
	"context"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/askweb/internal/api"
	"github.com/diogo/askweb/internal/logger"
	"github.com/diogo/askweb/internal/models"
)

// PDFResultMsg carries the settled summarization request
type PDFResultMsg struct {
	FileName string
	Typing   *Typing
	Response *models.SummaryResponse
	Err      error
}

// Reply returns the bot text to render for the result
func (m PDFResultMsg) Reply() string {
	if m.Err != nil {
		return models.PDFErrorPrefix + m.Err.Error()
	}
	return m.Response.Text()
}

// PdfUploadController owns the document upload flow.
// It does not disable the input controls.
type PdfUploadController struct {
	ctx    context.Context
	log    *MessageLog
	typing *Indicators
	client api.ChatClientInterface
}

// NewPdfUploadController creates the upload flow controller
func NewPdfUploadController(ctx context.Context, log *MessageLog, typing *Indicators, client api.ChatClientInterface) *PdfUploadController {
	return &PdfUploadController{
		ctx:    ctx,
		log:    log,
		typing: typing,
		client: client,
	}
}

// Select uploads the file at path. An empty selection does nothing.
func (p *PdfUploadController) Select(path string) tea.Cmd {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}

	fileName := filepath.Base(path)
	p.log.AddMessage(models.RoleUser, models.UploadNoticePrefix+fileName)

	typing, tick := p.typing.ShowTyping()
	logger.DebugCF("pdf", "Upload started", map[string]interface{}{"file": fileName})

	return tea.Batch(
		uploadCmd(p.ctx, p.client, path, fileName, typing),
		tick,
	)
}

// HandleResult renders the summary or the failure
func (p *PdfUploadController) HandleResult(msg PDFResultMsg) {
	p.typing.Release(msg.Typing)

	if msg.Err != nil {
		logger.WarnCF("pdf", "Upload failed", map[string]interface{}{
			"file":  msg.FileName,
			"error": msg.Err.Error(),
		})
	}
	p.log.AddMessage(models.RoleBot, msg.Reply())
}

func uploadCmd(ctx context.Context, client api.ChatClientInterface, path, fileName string, typing *Typing) tea.Cmd {
	return func() tea.Msg {
		result := PDFResultMsg{FileName: fileName, Typing: typing}
		result.Response, result.Err = api.SummarizePDFFile(ctx, client, path)
		return result
	}
}
