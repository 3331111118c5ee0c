package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diogo/askweb/internal/api"
	"github.com/diogo/askweb/internal/chat"
	"github.com/diogo/askweb/internal/models"
)

type clip struct {
	copied []string
	err    error
}

func (c *clip) write(s string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, s)
	return nil
}

func newTestModel(t *testing.T, client api.ChatClientInterface, voice chat.VoiceOptions) (Model, *clip) {
	t.Helper()
	w := chat.NewWidget(chat.Options{Context: context.Background(), Client: client, Voice: voice})
	w.Typing.Schedule = nil

	c := &clip{}
	m := NewModel(w, Options{Theme: "nord", BaseURL: "http://localhost:5000", Copy: c.write})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model), c
}

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

// press sends key and feeds the resulting messages back until quiet
func press(m Model, key tea.KeyMsg) Model {
	next, cmd := m.Update(key)
	return drive(next.(Model), cmd)
}

func drive(m Model, cmd tea.Cmd) Model {
	pending := runCmd(cmd)
	for len(pending) > 0 {
		msg := pending[0]
		pending = pending[1:]
		next, c := m.Update(msg)
		m = next.(Model)
		pending = append(pending, runCmd(c)...)
	}
	return m
}

func answer(text string) *api.MockChatClient {
	return &api.MockChatClient{
		AskVal:     &models.AskResponse{Answer: text, StatusCode: 200},
		SummaryVal: &models.SummaryResponse{Summary: "short", StatusCode: 200},
	}
}

func TestModel_ViewBeforeResize(t *testing.T) {
	w := chat.NewWidget(chat.Options{Client: answer("hi")})
	m := NewModel(w, Options{})
	assert.Contains(t, m.View(), "Initializing")
}

func TestModel_SubmitRoundTrip(t *testing.T) {
	client := answer("hi there")
	m, _ := newTestModel(t, client, chat.VoiceOptions{})

	m.textarea.SetValue("hello")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	require.NotNil(t, cmd)

	assert.True(t, m.widget.Controls.InputDisabled)
	assert.Equal(t, "", m.textarea.Value())
	assert.Contains(t, m.View(), "You (waiting)")

	m = drive(m, cmd)

	assert.Equal(t, 1, client.AskCalls)
	assert.Equal(t, "hello", client.LastQuestion)
	assert.False(t, m.widget.Controls.InputDisabled)
	assert.Equal(t, "hi there", m.widget.LastReply())
	assert.Contains(t, m.viewport.View(), "hi there")
}

func TestModel_BlankEnterIgnored(t *testing.T) {
	client := answer("hi")
	m, _ := newTestModel(t, client, chat.VoiceOptions{})

	m.textarea.SetValue("   ")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, client.AskCalls)
	assert.Equal(t, 0, m.widget.Log.Len())
}

func TestModel_NetworkErrorShown(t *testing.T) {
	client := &api.MockChatClient{AskErr: errors.New("connection refused")}
	m, _ := newTestModel(t, client, chat.VoiceOptions{})

	m.textarea.SetValue("ping")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, models.NetworkErrorPrefix+"connection refused", m.widget.LastReply())
}

func TestModel_VoiceUnsupportedShowsTip(t *testing.T) {
	m, _ := newTestModel(t, answer("hi"), chat.VoiceOptions{})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Equal(t, models.VoiceUnsupportedTip, m.notice)
	assert.Equal(t, 0, m.widget.Log.Len())
}

type stubRecognizer struct{ transcript string }

func (s stubRecognizer) Available() bool { return true }

func (s stubRecognizer) Listen(ctx context.Context, _ chat.RecognitionOptions) (string, error) {
	return s.transcript, nil
}

func TestModel_VoiceRoundTrip(t *testing.T) {
	client := answer("four")
	m, _ := newTestModel(t, client, chat.VoiceOptions{Recognizer: stubRecognizer{transcript: "two plus two"}})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlT})

	assert.Equal(t, "two plus two", client.LastQuestion)
	assert.Equal(t, "four", m.widget.LastReply())
	assert.Equal(t, chat.VoiceIdle, m.widget.Voice.State())
	assert.False(t, m.widget.Controls.VoiceDisabled)
	assert.Equal(t, "", m.textarea.Value())
}

func TestModel_PDFPicker(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o600))

	client := answer("hi")
	m, _ := newTestModel(t, client, chat.VoiceOptions{})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	require.True(t, m.picking)

	m.picker.SetValue(path)
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.picking)
	assert.Equal(t, "doc.pdf", client.LastFileName)
	msgs := m.widget.Log.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.UploadNoticePrefix+"doc.pdf", msgs[0].Text)
	assert.Equal(t, "short", msgs[1].Text)
}

func TestModel_PDFPickerCancel(t *testing.T) {
	client := answer("hi")
	m, _ := newTestModel(t, client, chat.VoiceOptions{})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlO})
	m.picker.SetValue("/tmp/whatever.pdf")
	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.picking)
	assert.Equal(t, 0, client.PDFCalls)
	assert.Equal(t, 0, m.widget.Log.Len())
}

func TestModel_CopyLastReply(t *testing.T) {
	m, c := newTestModel(t, answer("copy me"), chat.VoiceOptions{})

	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Empty(t, c.copied)
	assert.Equal(t, "Nothing to copy yet", m.notice)

	m.textarea.SetValue("q")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Equal(t, []string{"copy me"}, c.copied)
	assert.Equal(t, "Copied last reply", m.notice)
}

func TestModel_CopyFailure(t *testing.T) {
	m, c := newTestModel(t, answer("x"), chat.VoiceOptions{})
	c.err = errors.New("no display")

	m.textarea.SetValue("q")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(m, tea.KeyMsg{Type: tea.KeyCtrlY})

	assert.Equal(t, "Clipboard unavailable", m.notice)
}

func TestModel_EscQuits(t *testing.T) {
	m, _ := newTestModel(t, answer("x"), chat.VoiceOptions{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_StatusBarShowsVoiceLabel(t *testing.T) {
	m, _ := newTestModel(t, answer("x"), chat.VoiceOptions{Recognizer: stubRecognizer{}})
	bar := m.renderStatusBar(200)
	assert.Contains(t, bar, models.VoiceLabelIdle)
	assert.True(t, strings.Contains(bar, "Ctrl+O"))
}

func TestThemeByName(t *testing.T) {
	for _, name := range ThemeNames() {
		theme, ok := ThemeByName(name)
		assert.True(t, ok, name)
		assert.Equal(t, name, theme.Name)
	}
	_, ok := ThemeByName("missing")
	assert.False(t, ok)
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Contains(t, FormatError(errors.New("boom")), "boom")
}
