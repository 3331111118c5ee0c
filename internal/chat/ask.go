package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/askweb/internal/api"
	"github.com/diogo/askweb/internal/models"
)

// Flow names the submission path a result belongs to
type Flow string

const (
	FlowTyped Flow = "typed"
	FlowVoice Flow = "voice"
	FlowPDF   Flow = "pdf"
)

// AskResultMsg carries the settled QA request of a flow
type AskResultMsg struct {
	Flow     Flow
	Question string
	Typing   *Typing
	Response *models.AskResponse
	Err      error
}

// Reply returns the bot text to render for the result
func (m AskResultMsg) Reply() string {
	if m.Err != nil {
		return models.NetworkErrorPrefix + m.Err.Error()
	}
	return m.Response.Text()
}

// askCmd issues exactly one QA request off the update loop
func askCmd(ctx context.Context, client api.ChatClientInterface, flow Flow, question string, typing *Typing) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Ask(ctx, question)
		return AskResultMsg{
			Flow:     flow,
			Question: question,
			Typing:   typing,
			Response: resp,
			Err:      err,
		}
	}
}
