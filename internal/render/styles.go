package render

import "github.com/charmbracelet/glamour/styles"

// Standard glamour style names.
const (
	StyleDark    = styles.DarkStyle
	StyleLight   = styles.LightStyle
	StyleDracula = styles.DraculaStyle
	StyleNoTTY   = styles.NoTTYStyle
	StyleASCII   = styles.AsciiStyle
)

// IsStandardStyle reports whether style names one of glamour's bundled styles
// rather than a JSON file on disk.
func IsStandardStyle(style string) bool {
	_, ok := styles.DefaultStyles[style]
	return ok
}
