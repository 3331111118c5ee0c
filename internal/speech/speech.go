// Package speech provides speech capability adapters backed by external
// commands, such as a local recognizer that prints a transcript or a
// synthesizer like espeak-ng that reads text on stdin.
package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/diogo/askweb/internal/chat"
	apierrors "github.com/diogo/askweb/internal/errors"
)

// lookPath is replaced in tests
var lookPath = exec.LookPath

const waitDelay = time.Second

// CommandRecognizer runs a command per capture and reads the transcript
// from the first non-empty line of its stdout.
type CommandRecognizer struct {
	Args []string
}

// NewCommandRecognizer creates a recognizer for args; nil args yield an
// unavailable recognizer.
func NewCommandRecognizer(args []string) *CommandRecognizer {
	return &CommandRecognizer{Args: args}
}

// Available reports whether the command can be found
func (r *CommandRecognizer) Available() bool {
	return commandAvailable(r.Args)
}

// Listen runs one capture. Options are passed to the command through
// ASKWEB_SPEECH_* environment variables.
func (r *CommandRecognizer) Listen(ctx context.Context, opts chat.RecognitionOptions) (string, error) {
	if !r.Available() {
		return "", apierrors.ErrCapabilityUnavailable
	}

	cmd := exec.CommandContext(ctx, r.Args[0], r.Args[1:]...)
	cmd.Env = append(os.Environ(),
		"ASKWEB_SPEECH_LOCALE="+opts.Locale,
		"ASKWEB_SPEECH_INTERIM="+strconv.FormatBool(opts.InterimResults),
		"ASKWEB_SPEECH_MAX_ALTERNATIVES="+strconv.Itoa(opts.MaxAlternatives),
	)

	// Children of a killed recognizer may hold the pipes open
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", apierrors.NewVoiceError(strings.TrimSpace(stderr.String()), err)
	}

	return firstLine(stdout.String()), nil
}

// CommandSynthesizer pipes text to a command's stdin
type CommandSynthesizer struct {
	Args []string
}

// NewCommandSynthesizer creates a synthesizer for args
func NewCommandSynthesizer(args []string) *CommandSynthesizer {
	return &CommandSynthesizer{Args: args}
}

// Available reports whether the command can be found
func (s *CommandSynthesizer) Available() bool {
	return commandAvailable(s.Args)
}

// Speak blocks until the command has read and spoken text
func (s *CommandSynthesizer) Speak(ctx context.Context, text, locale string) error {
	if !s.Available() {
		return apierrors.ErrCapabilityUnavailable
	}

	cmd := exec.CommandContext(ctx, s.Args[0], s.Args[1:]...)
	cmd.Env = append(os.Environ(), "ASKWEB_SPEECH_LOCALE="+locale)
	cmd.Stdin = strings.NewReader(text)
	cmd.WaitDelay = waitDelay

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("speech synthesis failed: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Compile-time checks
var (
	_ chat.Recognizer  = (*CommandRecognizer)(nil)
	_ chat.Synthesizer = (*CommandSynthesizer)(nil)
)

func commandAvailable(args []string) bool {
	if len(args) == 0 {
		return false
	}
	_, err := lookPath(args[0])
	return err == nil
}

func firstLine(s string) string {
	scanner := bufio.NewScanner(strings.NewReader(s))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			return line
		}
	}
	return ""
}
