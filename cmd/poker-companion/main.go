package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type Globals struct {
	Debug  bool   `help:"Enable debug logging"`
	Config string `help:"Path to HCL config file" default:"poker-companion.hcl"`
}

type CLI struct {
	Globals

	Version      kong.VersionFlag `short:"v" help:"Show version"`
	Equity       EquityCmd        `cmd:"" help:"Compute equity vs a random hand"`
	Outs         OutsCmd          `cmd:"" help:"Detect flush and straight draws"`
	Distribution DistributionCmd  `cmd:"" help:"Show final hand category probabilities"`
	Advice       AdviceCmd        `cmd:"" help:"Recommend an action"`
	Serve        ServeCmd         `cmd:"" help:"Run the websocket analysis server"`
	Tui          TuiCmd           `cmd:"" help:"Interactive hand analyzer"`
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// setupLogger builds the CLI logger, raising the level with --debug.
func setupLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("poker-companion"),
		kong.Description("Texas Hold'em equity and decision-support toolkit"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
