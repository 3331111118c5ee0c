package chat

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/diogo/askweb/internal/api"
	apierrors "github.com/diogo/askweb/internal/errors"
	"github.com/diogo/askweb/internal/logger"
	"github.com/diogo/askweb/internal/models"
)

// RecognitionOptions configures one speech capture
type RecognitionOptions struct {
	Locale          string
	InterimResults  bool
	MaxAlternatives int
}

// Recognizer is a speech-to-text capability.
// Listen returns the transcript, or "" when capture ended without a result.
type Recognizer interface {
	Available() bool
	Listen(ctx context.Context, opts RecognitionOptions) (string, error)
}

// Synthesizer is a text-to-speech capability
type Synthesizer interface {
	Available() bool
	Speak(ctx context.Context, text, locale string) error
}

// VoiceState is the adapter's position in the capture lifecycle
type VoiceState int

const (
	VoiceIdle VoiceState = iota
	VoiceListening
	VoiceSubmitting
)

func (s VoiceState) String() string {
	switch s {
	case VoiceIdle:
		return "idle"
	case VoiceListening:
		return "listening"
	case VoiceSubmitting:
		return "submitting"
	default:
		return "unknown"
	}
}

// VoiceCaptureMsg reports the outcome of a capture
type VoiceCaptureMsg struct {
	Transcript string
	Err        error
}

// VoiceOptions configures a VoiceInputAdapter
type VoiceOptions struct {
	Recognizer   Recognizer
	Synthesizer  Synthesizer
	Locale       string
	SpeakReplies bool
}

// VoiceInputAdapter drives speech capture into the QA flow.
//
//	Idle --Press--> Listening --OnResult--> Submitting --HandleResult--> Idle
//	                Listening --OnError/OnEnd--> Idle
type VoiceInputAdapter struct {
	ctx      context.Context
	log      *MessageLog
	typing   *Indicators
	controls *Controls
	client   api.ChatClientInterface

	recognizer   Recognizer
	synthesizer  Synthesizer
	locale       string
	speakReplies bool

	attached    bool
	state       VoiceState
	placeholder *Bubble
	cancel      context.CancelFunc
}

// NewVoiceInputAdapter checks the recognizer once. Without one the trigger
// is disabled for good and no transitions are accepted.
func NewVoiceInputAdapter(ctx context.Context, log *MessageLog, typing *Indicators, controls *Controls, client api.ChatClientInterface, opts VoiceOptions) *VoiceInputAdapter {
	locale := opts.Locale
	if locale == "" {
		locale = models.SpeechLocale
	}

	v := &VoiceInputAdapter{
		ctx:          ctx,
		log:          log,
		typing:       typing,
		controls:     controls,
		client:       client,
		recognizer:   opts.Recognizer,
		synthesizer:  opts.Synthesizer,
		locale:       locale,
		speakReplies: opts.SpeakReplies,
	}

	if opts.Recognizer == nil || !opts.Recognizer.Available() {
		controls.VoiceDisabled = true
		controls.VoiceTooltip = models.VoiceUnsupportedTip
		logger.WarnCF("voice", "Speech recognition not available", nil)
		return v
	}

	v.attached = true
	controls.VoiceDisabled = false
	controls.VoiceLabel = models.VoiceLabelIdle
	return v
}

// Supported reports whether speech capture is wired up
func (v *VoiceInputAdapter) Supported() bool {
	return v.attached
}

// State returns the current lifecycle state
func (v *VoiceInputAdapter) State() VoiceState {
	return v.state
}

// Press starts a capture from Idle
func (v *VoiceInputAdapter) Press() tea.Cmd {
	if !v.attached || v.state != VoiceIdle || v.controls.VoiceDisabled {
		return nil
	}

	v.controls.Input = ""
	v.controls.VoiceDisabled = true
	v.controls.VoiceLabel = models.VoiceLabelListening
	v.placeholder = v.log.AddMessage(models.RoleUser, models.ListeningPlaceholder)
	v.state = VoiceListening

	ctx, cancel := context.WithCancel(v.ctx)
	v.cancel = cancel

	recognizer := v.recognizer
	opts := RecognitionOptions{
		Locale:          v.locale,
		InterimResults:  false,
		MaxAlternatives: 1,
	}
	return func() tea.Msg {
		transcript, err := recognizer.Listen(ctx, opts)
		return VoiceCaptureMsg{Transcript: transcript, Err: err}
	}
}

// StopListening ends an open capture; it settles through OnEnd
func (v *VoiceInputAdapter) StopListening() {
	if v.state == VoiceListening && v.cancel != nil {
		v.cancel()
	}
}

// HandleCapture dispatches a capture outcome to its transition
func (v *VoiceInputAdapter) HandleCapture(msg VoiceCaptureMsg) tea.Cmd {
	if v.state != VoiceListening {
		return nil
	}

	switch {
	case msg.Err != nil && errors.Is(msg.Err, context.Canceled):
		v.OnEnd()
		return nil
	case msg.Err != nil:
		v.OnError(msg.Err)
		return nil
	case msg.Transcript == "":
		v.OnEnd()
		return nil
	default:
		return v.OnResult(msg.Transcript)
	}
}

// OnResult submits the transcript as a question
func (v *VoiceInputAdapter) OnResult(transcript string) tea.Cmd {
	if v.state != VoiceListening {
		return nil
	}
	v.releaseCapture()

	v.resetTrigger()
	v.controls.Input = transcript

	if v.placeholder != nil {
		v.placeholder.SetText(transcript)
		v.placeholder = nil
	} else {
		v.log.AddMessage(models.RoleUser, transcript)
	}

	v.controls.Lock()
	v.state = VoiceSubmitting

	typing, tick := v.typing.ShowTyping()
	logger.DebugCF("voice", "Transcript submitted", map[string]interface{}{"length": len(transcript)})

	return tea.Batch(
		askCmd(v.ctx, v.client, FlowVoice, transcript, typing),
		tick,
	)
}

// OnError settles a failed capture
func (v *VoiceInputAdapter) OnError(err error) {
	if v.state != VoiceListening {
		return
	}
	v.releaseCapture()

	v.resetTrigger()
	if v.placeholder != nil {
		v.placeholder.SetText(models.VoiceErrorText)
		v.placeholder = nil
	}
	v.state = VoiceIdle

	if !apierrors.IsVoiceError(err) {
		err = apierrors.NewVoiceError("", err)
	}
	logger.ErrorCF("voice", "Speech recognition error", map[string]interface{}{"error": err.Error()})
}

// OnEnd settles a capture that ended without a result
func (v *VoiceInputAdapter) OnEnd() {
	if v.state != VoiceListening {
		return
	}
	v.releaseCapture()

	v.resetTrigger()
	if v.placeholder != nil {
		v.placeholder.SetText(models.StoppedListeningText)
		v.placeholder = nil
	}
	v.state = VoiceIdle
}

// HandleResult renders the reply, restores the controls and returns the
// detached speech command, if any. The speech is not awaited.
func (v *VoiceInputAdapter) HandleResult(msg AskResultMsg) tea.Cmd {
	v.typing.Release(msg.Typing)

	var speak tea.Cmd
	if msg.Err != nil {
		logger.ErrorCF("voice", "Voice feature error", map[string]interface{}{"error": msg.Err.Error()})
		v.log.AddMessage(models.RoleBot, msg.Reply())
	} else {
		reply := msg.Reply()
		v.log.AddMessage(models.RoleBot, reply)
		speak = v.speak(reply)
	}

	v.controls.Unlock()
	v.controls.Input = ""
	v.controls.Focus()
	v.resetTrigger()
	v.state = VoiceIdle

	return speak
}

// speak returns a fire-and-forget command reading text aloud
func (v *VoiceInputAdapter) speak(text string) tea.Cmd {
	if !v.speakReplies || v.synthesizer == nil || !v.synthesizer.Available() {
		return nil
	}

	synth := v.synthesizer
	ctx := v.ctx
	locale := v.locale
	return func() tea.Msg {
		if err := synth.Speak(ctx, text, locale); err != nil {
			logger.WarnCF("voice", "Speech synthesis failed", map[string]interface{}{"error": err.Error()})
		}
		return nil
	}
}

func (v *VoiceInputAdapter) resetTrigger() {
	v.controls.VoiceDisabled = false
	v.controls.VoiceLabel = models.VoiceLabelIdle
}

func (v *VoiceInputAdapter) releaseCapture() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}
