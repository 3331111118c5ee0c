// Package chat implements the chat widget flows: the message log, the typing
// indicator, and the typed, voice and PDF submission controllers.
//
// Everything in this package runs on the bubbletea update loop. Network and
// speech work is returned as tea.Cmd values and reports back as messages,
// so no locking is needed around the log or the controls.
package chat

import (
	"github.com/diogo/askweb/internal/models"
)

// Bubble is a handle to a rendered message, used to replace its text later
type Bubble struct {
	msg     models.Message
	log     *MessageLog
	removed bool
}

// ID returns the message identifier
func (b *Bubble) ID() string {
	return b.msg.ID
}

// Role returns the message author
func (b *Bubble) Role() models.Role {
	return b.msg.Role
}

// Text returns the current text
func (b *Bubble) Text() string {
	return b.msg.Text
}

// SetText replaces the bubble's text in place
func (b *Bubble) SetText(text string) {
	if b.msg.Text == text {
		return
	}
	b.msg.Text = text
	if b.log != nil && !b.Removed() {
		b.log.changed()
	}
}

// Removed reports whether the bubble was detached from its log
func (b *Bubble) Removed() bool {
	return b.removed
}

// Remove detaches the bubble from its log
func (b *Bubble) Remove() {
	if b.log != nil {
		b.log.Remove(b)
	}
}

// MessageLog is the ordered transcript of chat bubbles
type MessageLog struct {
	bubbles  []*Bubble
	version  uint64
	onScroll func()
}

// NewMessageLog creates an empty log
func NewMessageLog() *MessageLog {
	return &MessageLog{}
}

// OnScroll registers the hook that scrolls the viewport to its bottom.
// It runs after every append.
func (l *MessageLog) OnScroll(fn func()) {
	l.onScroll = fn
}

// AddMessage appends a bubble with literal text and scrolls to the bottom
func (l *MessageLog) AddMessage(role models.Role, text string) *Bubble {
	b := &Bubble{
		msg: models.NewMessage(role, text),
		log: l,
	}
	l.bubbles = append(l.bubbles, b)
	l.changed()
	l.scrollToBottom()
	return b
}

// Remove detaches b; removing an already removed bubble does nothing
func (l *MessageLog) Remove(b *Bubble) {
	if b == nil || b.Removed() {
		return
	}
	for i, candidate := range l.bubbles {
		if candidate == b {
			l.bubbles = append(l.bubbles[:i], l.bubbles[i+1:]...)
			b.removed = true
			l.changed()
			return
		}
	}
}

// Messages returns a snapshot of the transcript in order
func (l *MessageLog) Messages() []models.Message {
	out := make([]models.Message, len(l.bubbles))
	for i, b := range l.bubbles {
		out[i] = b.msg
	}
	return out
}

// Len returns the number of bubbles
func (l *MessageLog) Len() int {
	return len(l.bubbles)
}

// Version changes whenever the visible content changes
func (l *MessageLog) Version() uint64 {
	return l.version
}

func (l *MessageLog) changed() {
	l.version++
}

func (l *MessageLog) scrollToBottom() {
	if l.onScroll != nil {
		l.onScroll()
	}
}
