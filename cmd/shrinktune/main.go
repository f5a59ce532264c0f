package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"sync/atomic"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/wavefold/shrinktune/internal/cli"
	"github.com/wavefold/shrinktune/internal/config"
	"github.com/wavefold/shrinktune/internal/encoder"
	"github.com/wavefold/shrinktune/internal/logging"
	"github.com/wavefold/shrinktune/internal/pipeline"
	"github.com/wavefold/shrinktune/internal/ui"
)

var (
	version = "0.1.0"
)

// CLI defines the command-line interface
type CLI struct {
	Input       string `short:"i" placeholder:"dir" required:"" help:"Input directory tree to scan for MP3 files"`
	Output      string `short:"o" placeholder:"dir" required:"" help:"Output directory; the input tree is mirrored beneath it"`
	Quality     string `short:"q" placeholder:"0-9" default:"2" help:"VBR quality level, single digit, 0 is best"`
	Threshold   string `short:"t" placeholder:"dB" default:"-45dB" help:"Silence threshold, e.g. -45dB"`
	Silence     string `short:"s" placeholder:"mode" default:"none" help:"Silence trimming: none, start, end, both or all"`
	Parallelism int    `short:"n" placeholder:"count" default:"${numcpu}" help:"Concurrent encodes"`
	Verbose     bool   `short:"v" help:"Mirror log lines to the console (disables the progress display)"`
	Version     bool   `help:"Show version information"`
}

func main() {
	cliArgs := &CLI{}
	kong.Parse(cliArgs,
		kong.Name("shrinktune"),
		kong.Description("Batch MP3 re-compressor"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
			"numcpu":  strconv.Itoa(runtime.NumCPU()),
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if cliArgs.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	mode, err := config.ParseSilenceMode(cliArgs.Silence)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	cfg := config.Default()
	cfg.InputRoot = cliArgs.Input
	cfg.OutputRoot = cliArgs.Output
	cfg.Quality = cliArgs.Quality
	cfg.SilenceThreshold = cliArgs.Threshold
	cfg.SilenceMode = mode
	cfg.Parallelism = cliArgs.Parallelism
	cfg.Verbose = cliArgs.Verbose

	// Validate → Discover → Dispatch → Aggregate → Report; any failure
	// here is fatal before a single file is touched.
	if err := cfg.Validate(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
	if err := cfg.CheckEncoder(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	log := logging.New(cfg.Verbose)
	defer log.Sync()

	enc := encoder.NewFFmpeg()

	var summary pipeline.Summary
	var runErr error
	if cfg.Verbose {
		// Log lines own the terminal in verbose mode; use the plain
		// carriage-return reporter instead of the TUI.
		summary, runErr = pipeline.Run(context.Background(), cfg, enc, log,
			func(total int, completed *atomic.Int64) {
				pipeline.Progress(os.Stderr, total, completed)
			})
	} else {
		summary, runErr = runWithUI(cfg, enc, log)
	}

	switch {
	case errors.Is(runErr, pipeline.ErrNoFiles):
		fmt.Printf("No MP3 files found in %s\n", cfg.InputRoot)
		os.Exit(0)
	case runErr != nil:
		cli.PrintError(runErr.Error())
		log.Sync()
		os.Exit(1)
	}

	cli.PrintSummary(summary)
}

type runOutcome struct {
	summary pipeline.Summary
	err     error
}

// runWithUI runs the batch in the background while the Bubbletea reporter
// polls the shared completion counter in the foreground.
func runWithUI(cfg *config.Config, enc encoder.Encoder, log *zap.Logger) (pipeline.Summary, error) {
	p := tea.NewProgram(ui.NewModel())

	resCh := make(chan runOutcome, 1)
	go func() {
		summary, err := pipeline.Run(context.Background(), cfg, enc, log,
			func(total int, completed *atomic.Int64) {
				p.Send(ui.StartMsg{Total: total, Completed: completed})
			})
		resCh <- runOutcome{summary: summary, err: err}
		p.Send(ui.DoneMsg{Err: err})
	}()

	if _, err := p.Run(); err != nil {
		// A display failure must not lose the batch outcome.
		cli.PrintError(fmt.Sprintf("UI error: %v", err))
	}

	out := <-resCh
	return out.summary, out.err
}
