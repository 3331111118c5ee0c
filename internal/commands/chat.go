package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diogo/askweb/internal/chat"
	"github.com/diogo/askweb/internal/logger"
	"github.com/diogo/askweb/internal/tui"
)

func newChatCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start the interactive chat.

Keys:
  Enter    send the question
  Ctrl+T   ask by voice (needs voice.recognize_command)
  Ctrl+O   summarize a PDF
  Ctrl+Y   copy the last reply
  Esc      stop listening, or quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg

			client, err := deps.NewClient(cfg)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer client.Close()

			widget := chat.NewWidget(chat.Options{
				Context: cmd.Context(),
				Client:  client,
				Voice:   deps.Voice(cfg.Voice),
			})

			logger.InfoCF("chat", "Session started", map[string]interface{}{
				"base_url": cfg.BaseURL,
				"voice":    widget.Voice.Supported(),
			})

			return deps.RunChat(widget, tui.Options{
				Theme:   cfg.TUITheme,
				BaseURL: cfg.BaseURL,
				Copy:    deps.Copy,
			})
		},
	}
}
