// Package commands provides CLI commands for askweb.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/askweb/internal/config"
	"github.com/diogo/askweb/internal/logger"
)

var (
	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

// rootOptions carries the flag values shared by the commands
type rootOptions struct {
	url      string
	verbose  bool
	file     string
	output   string
	markdown bool
	copy     bool

	cfg config.Config
}

// NewRootCmd creates the askweb command tree
func NewRootCmd(deps *Dependencies) *cobra.Command {
	if deps == nil {
		deps = NewDependencies()
	}
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "askweb [question]",
		Short: "Terminal client for the askweb chat service",
		Long: `askweb talks to a question-answering service over its /ask and /pdf
endpoints. Use it for one-shot questions or start the interactive chat.

Examples:
  askweb chat                           Start interactive chat
  askweb "What is Go?"                  Ask a single question
  askweb -f question.md                 Read the question from a file
  cat question.md | askweb              Read the question from stdin
  askweb "Hello" -o answer.md           Save the answer to a file
  askweb pdf report.pdf                 Summarize a PDF
  askweb dev-server                     Run a local stub backend`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(deps)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(deps.Stdout, "askweb %s (built %s)\n", Version, BuildTime)
				return nil
			}

			question, ok, err := readQuestion(deps, opts, args)
			if err != nil {
				return err
			}
			if !ok {
				return cmd.Help()
			}
			return runAsk(cmd.Context(), deps, opts, question)
		},
	}

	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)

	cmd.PersistentFlags().StringVar(&opts.url, "url", "", "Base URL of the chat service (default from config)")
	cmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "Log debug output to stderr")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read the question from file")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "Save the answer to file")
	cmd.PersistentFlags().BoolVar(&opts.markdown, "markdown", false, "Render the answer as markdown on a terminal")
	cmd.PersistentFlags().BoolVar(&opts.copy, "copy", false, "Copy the answer to the clipboard")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	cmd.AddCommand(newChatCmd(deps, opts))
	cmd.AddCommand(newPDFCmd(deps, opts))
	cmd.AddCommand(newConfigCmd(deps, opts))
	cmd.AddCommand(newDevServerCmd(deps))

	return cmd
}

// setup loads the configuration and starts logging
func (o *rootOptions) setup(deps *Dependencies) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if o.url != "" {
		cfg.BaseURL = strings.TrimRight(strings.TrimSpace(o.url), "/")
	}
	o.cfg = cfg

	switch {
	case o.verbose:
		logger.Init(deps.Stderr, "debug")
	case cfg.LogFile != "":
		if err := logger.InitFile(cfg.LogFile, cfg.LogLevel); err != nil {
			fmt.Fprintf(deps.Stderr, "Warning: %v\n", err)
		}
	}
	return nil
}

// readQuestion picks the question from -f, the argument or piped stdin, in that order
func readQuestion(deps *Dependencies, opts *rootOptions, args []string) (string, bool, error) {
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", false, fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), true, nil
	}

	if len(args) > 0 {
		return args[0], true, nil
	}

	if deps.StdinPiped != nil && deps.StdinPiped() {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", false, fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), true, nil
	}

	return "", false, nil
}

var rootCmd = NewRootCmd(nil)

// Execute runs the root command
func Execute() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
