package chat

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/askweb/internal/api"
	"github.com/diogo/askweb/internal/models"
)

// Options wires a Widget to its collaborators
type Options struct {
	Context context.Context
	Client  api.ChatClientInterface
	Voice   VoiceOptions
}

// Widget is the composition of the transcript, the controls and the three
// submission flows. The TUI forwards messages to Update and renders Log
// and Controls.
type Widget struct {
	Log      *MessageLog
	Controls *Controls
	Typing   *Indicators

	Chat  *ChatController
	PDF   *PdfUploadController
	Voice *VoiceInputAdapter
}

// NewWidget builds a widget with instance-scoped state
func NewWidget(opts Options) *Widget {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := NewMessageLog()
	controls := NewControls()
	typing := NewIndicators(log)

	return &Widget{
		Log:      log,
		Controls: controls,
		Typing:   typing,
		Chat:     NewChatController(ctx, log, typing, controls, opts.Client),
		PDF:      NewPdfUploadController(ctx, log, typing, opts.Client),
		Voice:    NewVoiceInputAdapter(ctx, log, typing, controls, opts.Client, opts.Voice),
	}
}

// Update routes flow messages to their owners. Unknown messages return nil.
func (w *Widget) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case TypingTickMsg:
		return w.Typing.HandleTick(msg)

	case AskResultMsg:
		if msg.Flow == FlowVoice {
			return w.Voice.HandleResult(msg)
		}
		w.Chat.HandleResult(msg)

	case PDFResultMsg:
		w.PDF.HandleResult(msg)

	case VoiceCaptureMsg:
		return w.Voice.HandleCapture(msg)
	}
	return nil
}

// Busy reports whether any request is outstanding
func (w *Widget) Busy() bool {
	return w.Typing.Active() > 0
}

// LastReply returns the newest settled bot text, skipping typing bubbles
func (w *Widget) LastReply() string {
	msgs := w.Log.Messages()
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == models.RoleBot && !w.Typing.IsTyping(msgs[i].ID) {
			return msgs[i].Text
		}
	}
	return ""
}
