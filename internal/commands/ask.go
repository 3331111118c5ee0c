package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/diogo/askweb/internal/render"
	"github.com/diogo/askweb/internal/tui"
)

// runAsk sends a single question and prints the answer
func runAsk(ctx context.Context, deps *Dependencies, opts *rootOptions, question string) error {
	question = strings.TrimSpace(question)
	if question == "" {
		return fmt.Errorf("question cannot be empty")
	}

	client, err := deps.NewClient(opts.cfg)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	decorated := deps.IsTTY != nil && deps.IsTTY()

	var spin *spinner
	if decorated {
		spin = newSpinner(deps.Stderr, "Thinking")
		spin.start()
	}

	resp, err := client.Ask(ctx, question)
	if err != nil {
		if spin != nil {
			spin.stopWithError()
		}
		fmt.Fprintln(deps.Stderr, tui.FormatError(err))
		return fmt.Errorf("ask failed: %w", err)
	}
	if spin != nil {
		spin.stopWithSuccess("Done")
	}

	return writeReply(deps, opts, resp.Text(), decorated)
}

// writeReply delivers text to the clipboard, a file or stdout as requested
func writeReply(deps *Dependencies, opts *rootOptions, text string, decorated bool) error {
	if opts.copy || opts.cfg.CopyToClipboard {
		if err := deps.Copy(text); err != nil {
			warn := lipgloss.NewStyle().Foreground(colorError).Render(
				fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err),
			)
			fmt.Fprintln(deps.Stderr, warn)
		} else if decorated {
			fmt.Fprintln(deps.Stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render("✓ Copied to clipboard"))
		}
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		if decorated {
			fmt.Fprintln(deps.Stderr, lipgloss.NewStyle().Foreground(colorSuccess).Render(
				fmt.Sprintf("✓ Answer saved to %s", opts.output),
			))
		}
		return nil
	}

	if !decorated {
		fmt.Fprintln(deps.Stdout, text)
		return nil
	}

	bubbleWidth := 80
	if deps.TermWidth != nil {
		if w := deps.TermWidth(); w > 0 {
			bubbleWidth = w - 4
		}
	}
	if bubbleWidth < 40 {
		bubbleWidth = 40
	}
	if bubbleWidth > 120 {
		bubbleWidth = 120
	}

	body := text
	if opts.markdown {
		rendered, err := render.Markdown(text, render.OptionsFromConfig(&opts.cfg).WithWidth(bubbleWidth-4))
		if err == nil {
			body = strings.TrimRight(rendered, "\n")
		}
	}

	fmt.Fprintln(deps.Stdout, botLabelStyle.Render("✦ Bot"))
	fmt.Fprintln(deps.Stdout, botBubbleStyle.Width(bubbleWidth).Render(body))
	return nil
}
