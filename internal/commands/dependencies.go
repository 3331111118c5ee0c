package commands

import (
	"context"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/diogo/askweb/internal/api"
	"github.com/diogo/askweb/internal/chat"
	"github.com/diogo/askweb/internal/config"
	"github.com/diogo/askweb/internal/devserver"
	"github.com/diogo/askweb/internal/speech"
	"github.com/diogo/askweb/internal/tui"
)

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// LoadConfig returns the effective configuration
	LoadConfig func() (config.Config, error)

	// ConfigPath returns where `config init` writes
	ConfigPath func() (string, error)

	// NewClient builds the service client for cfg
	NewClient func(cfg config.Config) (api.ChatClientInterface, error)

	// Voice builds the speech capabilities for the chat widget
	Voice func(cfg config.VoiceConfig) chat.VoiceOptions

	// RunChat runs the interactive interface until the user quits
	RunChat func(widget *chat.Widget, opts tui.Options) error

	// Serve runs the stub backend until ctx is cancelled
	Serve func(ctx context.Context, cfg devserver.Config) error

	// Copy writes text to the clipboard
	Copy func(text string) error

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// StdinPiped reports whether input is redirected
	StdinPiped func() bool

	// IsTTY reports whether stdout is a terminal
	IsTTY func() bool

	// TermWidth returns the terminal width, 0 when unknown
	TermWidth func() int
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		LoadConfig: config.LoadConfig,
		ConfigPath: config.GetConfigPath,
		NewClient:  newServiceClient,
		Voice:      newVoiceOptions,
		RunChat:    tui.RunChat,
		Serve: func(ctx context.Context, cfg devserver.Config) error {
			return devserver.New(cfg).ListenAndServe(ctx)
		},
		Copy:       clipboard.WriteAll,
		Stdin:      os.Stdin,
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		StdinPiped: stdinPiped,
		IsTTY: func() bool {
			return term.IsTerminal(int(os.Stdout.Fd()))
		},
		TermWidth: func() int {
			width, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err != nil {
				return 0
			}
			return width
		},
	}
}

func newServiceClient(cfg config.Config) (api.ChatClientInterface, error) {
	return api.NewClient(cfg.BaseURL, api.WithTimeout(cfg.Timeout()))
}

// newVoiceOptions wires the command-backed speech adapters.
// A disabled or unconfigured recognizer leaves the voice trigger disabled.
func newVoiceOptions(cfg config.VoiceConfig) chat.VoiceOptions {
	opts := chat.VoiceOptions{
		Locale:       cfg.Locale,
		SpeakReplies: cfg.SpeakReplies,
	}
	if !cfg.Enabled {
		return opts
	}
	if args := config.ExpandCommand(cfg.RecognizeCommand, cfg.Locale); len(args) > 0 {
		opts.Recognizer = speech.NewCommandRecognizer(args)
	}
	if args := config.ExpandCommand(cfg.SpeakCommand, cfg.Locale); len(args) > 0 {
		opts.Synthesizer = speech.NewCommandSynthesizer(args)
	}
	return opts
}

func stdinPiped() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
