package format

import (
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for console output.
type Config struct {
	LineWidth int            // target line length for MaximaList, in ‘en’s
	Color     bool           // highlight maxima with colors
	Marker    string         // flag for maxima, default "*"
	Context   *uax11.Context // for display widths; nil means uax11.LatinContext
	Highlight *color.Color   // color for maxima, default red
}

const defaultLineWidth = 65

func (config *Config) normalized() Config {
	var c Config
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = defaultLineWidth
	}
	if c.Marker == "" {
		c.Marker = "*"
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Highlight == nil {
		c.Highlight = color.New(color.FgRed, color.Bold)
	} else {
		h := *c.Highlight // the caller's color keeps its own color mode
		c.Highlight = &h
	}
	if c.Color {
		c.Highlight.EnableColor()
	} else {
		c.Highlight.DisableColor()
	}
	return c
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		w, _, err := term.GetSize(fd)
		if err != nil {
			config.LineWidth = defaultLineWidth
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = defaultLineWidth
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
