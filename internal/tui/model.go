package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/askweb/internal/chat"
	"github.com/diogo/askweb/internal/logger"
	"github.com/diogo/askweb/internal/models"
)

// Options configures the chat model
type Options struct {
	Theme   string
	BaseURL string

	// Copy writes text to the system clipboard. Defaults to atotto/clipboard.
	Copy func(string) error
}

// Model renders a chat.Widget and translates key presses into its operations
type Model struct {
	widget *chat.Widget
	styles Styles
	opts   Options

	viewport viewport.Model
	textarea textarea.Model
	picker   textinput.Model

	picking bool
	ready   bool
	notice  string

	// follow is set by the log's scroll hook and consumed on the next render
	follow  *bool
	version uint64

	width  int
	height int
}

// NewModel wires a model to widget
func NewModel(widget *chat.Widget, opts Options) Model {
	theme, ok := ThemeByName(opts.Theme)
	if !ok {
		theme = TokyoNightTheme
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}
	styles := NewStyles(theme)

	ta := textarea.New()
	ta.Placeholder = "Ask a question..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(2)
	ta.Focus()
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.FocusedStyle.Base = lipgloss.NewStyle().Foreground(theme.Text)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(theme.TextDim)
	ta.BlurredStyle = ta.FocusedStyle

	picker := textinput.New()
	picker.Placeholder = "/path/to/document.pdf"
	picker.Prompt = "PDF: "
	picker.CharLimit = 1024

	follow := false
	widget.Log.OnScroll(func() { follow = true })

	return Model{
		widget:   widget,
		styles:   styles,
		opts:     opts,
		textarea: ta,
		picker:   picker,
		follow:   &follow,
	}
}

// Init starts the cursor blink
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		if m.picking {
			return m.updatePicker(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.widget.Voice.State() == chat.VoiceListening {
				m.widget.Voice.StopListening()
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			m.pushInput()
			cmd := m.widget.Chat.Submit()
			m.pullInput()
			m.refresh()
			return m, cmd

		case "ctrl+t":
			if m.widget.Controls.VoiceDisabled {
				if tip := m.widget.Controls.VoiceTooltip; tip != "" {
					m.notice = tip
				}
				return m, nil
			}
			m.pushInput()
			cmd := m.widget.Voice.Press()
			m.pullInput()
			m.refresh()
			return m, cmd

		case "ctrl+o":
			m.picking = true
			m.picker.Reset()
			m.textarea.Blur()
			return m, m.picker.Focus()

		case "ctrl+y":
			m.copyLastReply()
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

		if !m.widget.Controls.InputDisabled {
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if cmd := m.widget.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.pullInput()
	m.refresh()

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.closePicker()
		return m, nil

	case "enter":
		path := m.picker.Value()
		m.closePicker()
		cmd := m.widget.PDF.Select(path)
		m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *Model) closePicker() {
	m.picking = false
	m.picker.Blur()
	m.picker.Reset()
	if !m.widget.Controls.InputDisabled {
		m.textarea.Focus()
	}
}

func (m *Model) copyLastReply() {
	reply := m.widget.LastReply()
	if reply == "" {
		m.notice = "Nothing to copy yet"
		return
	}
	if err := m.opts.Copy(reply); err != nil {
		logger.WarnCF("tui", "Clipboard write failed", map[string]interface{}{
			"error": err.Error(),
		})
		m.notice = "Clipboard unavailable"
		return
	}
	m.notice = "Copied last reply"
}

// pushInput hands the textarea text to the widget before an operation reads it
func (m *Model) pushInput() {
	m.widget.Controls.Input = m.textarea.Value()
	m.notice = ""
}

// pullInput mirrors the widget's control state back into the textarea
func (m *Model) pullInput() {
	c := m.widget.Controls
	if m.textarea.Value() != c.Input {
		m.textarea.SetValue(c.Input)
	}
	if c.InputDisabled || m.picking {
		m.textarea.Blur()
	} else if c.Focused {
		m.textarea.Focus()
	}
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height

	headerHeight := 3
	inputHeight := 6
	statusHeight := 1

	vpHeight := height - headerHeight - inputHeight - statusHeight - 2
	if vpHeight < 5 {
		vpHeight = 5
	}
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	if !m.ready {
		m.viewport = viewport.New(contentWidth, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = contentWidth
		m.viewport.Height = vpHeight
	}
	m.textarea.SetWidth(contentWidth - 4)
	m.picker.Width = contentWidth - 10

	m.version = 0
	m.refresh()
}

// refresh re-renders the transcript when the log changed and follows appends
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	if v := m.widget.Log.Version(); v != m.version {
		m.version = v
		m.viewport.SetContent(m.renderMessages())
	}
	if *m.follow {
		*m.follow = false
		m.viewport.GotoBottom()
	}
}

func (m Model) renderMessages() string {
	var content strings.Builder
	bubbleWidth := m.viewport.Width - 6
	if bubbleWidth < 10 {
		bubbleWidth = 10
	}

	for i, msg := range m.widget.Log.Messages() {
		if i > 0 {
			content.WriteString("\n")
		}
		if msg.Role == models.RoleUser {
			content.WriteString(m.styles.UserLabel.Render("● You"))
			content.WriteString("\n")
			content.WriteString(m.styles.UserBubble.Width(bubbleWidth).Render(msg.Text))
		} else {
			text := msg.Text
			if m.widget.Typing.IsTyping(msg.ID) {
				text = m.styles.Typing.Render(text)
			}
			content.WriteString(m.styles.BotLabel.Render("✦ Bot"))
			content.WriteString("\n")
			content.WriteString(m.styles.BotBubble.Width(bubbleWidth).Render(text))
		}
		content.WriteString("\n")
	}
	return content.String()
}

// View renders the TUI
func (m Model) View() string {
	if !m.ready {
		return m.styles.Hint.Render("  Initializing...")
	}

	contentWidth := m.width - 4
	var sections []string

	title := m.styles.Title.Render("✦ askweb")
	if m.opts.BaseURL != "" {
		title += m.styles.Hint.Render("  •  " + m.opts.BaseURL)
	}
	sections = append(sections, m.styles.Header.Width(contentWidth).Render(title))

	var body string
	if m.widget.Log.Len() == 0 {
		body = m.styles.Hint.Render("Ask anything, or press Ctrl+O to summarize a PDF")
	} else {
		body = m.viewport.View()
	}
	sections = append(sections, m.styles.Messages.Width(contentWidth).Height(m.viewport.Height).Render(body))

	var input string
	if m.picking {
		input = m.styles.Picker.Width(contentWidth - 4).Render(m.picker.View())
	} else {
		label := m.styles.InputLabel.Render("You")
		if m.widget.Controls.InputDisabled {
			label = m.styles.Disabled.Render("You (waiting)")
		}
		input = lipgloss.JoinVertical(lipgloss.Left, label, m.textarea.View())
	}
	sections = append(sections, m.styles.InputPanel.Width(contentWidth).Render(input))

	sections = append(sections, m.renderStatusBar(contentWidth))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatusBar(width int) string {
	c := m.widget.Controls

	voice := m.styles.Voice.Render(c.VoiceLabel)
	if c.VoiceDisabled {
		voice = m.styles.Disabled.Render(c.VoiceLabel)
	}

	shortcuts := []struct {
		key  string
		desc string
	}{
		{"Enter", "Send"},
		{"Ctrl+T", "Voice"},
		{"Ctrl+O", "PDF"},
		{"Ctrl+Y", "Copy"},
		{"Esc", "Quit"},
	}
	if m.picking {
		shortcuts = shortcuts[:0]
		shortcuts = append(shortcuts,
			struct{ key, desc string }{"Enter", "Upload"},
			struct{ key, desc string }{"Esc", "Cancel"},
		)
	}

	items := []string{voice}
	for _, s := range shortcuts {
		items = append(items, m.styles.StatusKey.Render(s.key)+m.styles.StatusDesc.Render(" "+s.desc))
	}
	bar := strings.Join(items, "  │  ")

	if m.notice != "" {
		bar += "  " + m.styles.Hint.Render(m.notice)
	}
	return m.styles.StatusBar.Width(width).Render(bar)
}

// Widget returns the underlying widget
func (m Model) Widget() *chat.Widget {
	return m.widget
}

// RunChat starts the chat TUI on widget
func RunChat(widget *chat.Widget, opts Options) error {
	p := tea.NewProgram(
		NewModel(widget, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
