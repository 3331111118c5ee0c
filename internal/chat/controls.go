package chat

import "github.com/diogo/askweb/internal/models"

// Controls is the state of the input field and its buttons.
// Input and send are disabled exactly while a request for the owning
// flow is outstanding.
type Controls struct {
	Input         string
	InputDisabled bool
	SendDisabled  bool
	Focused       bool

	VoiceDisabled bool
	VoiceLabel    string
	VoiceTooltip  string
}

// NewControls returns enabled, focused controls
func NewControls() *Controls {
	return &Controls{
		Focused:    true,
		VoiceLabel: models.VoiceLabelIdle,
	}
}

// Lock disables input and send for an outstanding request.
// A disabled input cannot hold focus.
func (c *Controls) Lock() {
	c.InputDisabled = true
	c.SendDisabled = true
	c.Focused = false
}

// Unlock re-enables input and send
func (c *Controls) Unlock() {
	c.InputDisabled = false
	c.SendDisabled = false
}

// Focus returns focus to the input
func (c *Controls) Focus() {
	c.Focused = true
}
