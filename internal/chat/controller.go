package chat

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/askweb/internal/api"
	"github.com/diogo/askweb/internal/logger"
	"github.com/diogo/askweb/internal/models"
)

// ChatController owns the typed submit flow
type ChatController struct {
	ctx      context.Context
	log      *MessageLog
	typing   *Indicators
	controls *Controls
	client   api.ChatClientInterface
}

// NewChatController creates the typed flow controller
func NewChatController(ctx context.Context, log *MessageLog, typing *Indicators, controls *Controls, client api.ChatClientInterface) *ChatController {
	return &ChatController{
		ctx:      ctx,
		log:      log,
		typing:   typing,
		controls: controls,
		client:   client,
	}
}

// Submit sends the trimmed input as a question.
// Blank input, or a submit while the send button is disabled, is ignored.
func (c *ChatController) Submit() tea.Cmd {
	if c.controls.SendDisabled {
		return nil
	}

	question := strings.TrimSpace(c.controls.Input)
	if question == "" {
		return nil
	}

	c.log.AddMessage(models.RoleUser, question)
	c.controls.Input = ""
	c.controls.Lock()

	typing, tick := c.typing.ShowTyping()
	logger.DebugCF("chat", "Question submitted", map[string]interface{}{"length": len(question)})

	return tea.Batch(
		askCmd(c.ctx, c.client, FlowTyped, question, typing),
		tick,
	)
}

// HandleResult renders the settled request and restores the controls
func (c *ChatController) HandleResult(msg AskResultMsg) {
	c.typing.Release(msg.Typing)

	if msg.Err != nil {
		logger.WarnCF("chat", "Question failed", map[string]interface{}{"error": msg.Err.Error()})
	}
	c.log.AddMessage(models.RoleBot, msg.Reply())

	c.controls.Unlock()
	c.controls.Focus()
}
