package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lox/poker-companion/internal/tui"
)

// TuiCmd launches the interactive hand analyzer.
type TuiCmd struct{}

func (c *TuiCmd) Run(globals *Globals) error {
	// The alt screen owns stdout, so logs are discarded unless debugging.
	logger := log.New(io.Discard)
	if globals.Debug {
		f, err := os.Create("poker-companion-debug.log")
		if err != nil {
			return err
		}
		defer f.Close()
		logger = log.New(f)
		logger.SetLevel(log.DebugLevel)
	}
	return tui.Run(logger)
}
