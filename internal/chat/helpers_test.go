package chat

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/askweb/internal/api"
	"github.com/diogo/askweb/internal/models"
)

// newTestWidget builds a widget whose typing ticks are driven by hand
func newTestWidget(client api.ChatClientInterface, voice VoiceOptions) *Widget {
	w := NewWidget(Options{Context: context.Background(), Client: client, Voice: voice})
	w.Typing.Schedule = nil
	return w
}

// runCmd executes cmd and returns the produced messages, flattening batches
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// settle feeds every message produced by cmd back through the widget until quiet
func settle(w *Widget, cmd tea.Cmd) {
	pending := runCmd(cmd)
	for len(pending) > 0 {
		msg := pending[0]
		pending = pending[1:]
		pending = append(pending, runCmd(w.Update(msg))...)
	}
}

func texts(log *MessageLog) []string {
	var out []string
	for _, m := range log.Messages() {
		out = append(out, string(m.Role)+":"+m.Text)
	}
	return out
}

// fakeRecognizer replays a canned capture
type fakeRecognizer struct {
	available  bool
	transcript string
	err        error
	block      bool

	mu       sync.Mutex
	lastOpts RecognitionOptions
	calls    int
}

func (f *fakeRecognizer) Available() bool { return f.available }

func (f *fakeRecognizer) Listen(ctx context.Context, opts RecognitionOptions) (string, error) {
	f.mu.Lock()
	f.calls++
	f.lastOpts = opts
	f.mu.Unlock()

	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.transcript, f.err
}

// fakeSynthesizer records spoken texts
type fakeSynthesizer struct {
	available bool
	err       error

	mu     sync.Mutex
	spoken []string
	locale string
}

func (f *fakeSynthesizer) Available() bool { return f.available }

func (f *fakeSynthesizer) Speak(ctx context.Context, text, locale string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spoken = append(f.spoken, text)
	f.locale = locale
	return f.err
}

func answer(text string) *api.MockChatClient {
	return &api.MockChatClient{AskVal: &models.AskResponse{Answer: text, StatusCode: 200}}
}

var errTimeout = errors.New("timeout")
