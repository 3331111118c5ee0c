package render

import "github.com/diogo/askweb/internal/config"

// OptionsFromConfig builds render options from the loaded configuration.
// GLAMOUR_STYLE is already folded into cfg.MarkdownStyle by the config loader.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	if cfg != nil && cfg.MarkdownStyle != "" {
		opts.Style = cfg.MarkdownStyle
	}
	return opts
}
