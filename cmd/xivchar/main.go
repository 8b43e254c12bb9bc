package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/malippew/xivchar"
	"github.com/malippew/xivchar/goquery"
	xivhttp "github.com/malippew/xivchar/http"
	xivslog "github.com/malippew/xivchar/slog"
)

func main() {
	// A missing .env file is fine; flags and the environment still apply.
	_ = godotenv.Load()

	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Service used in place of the Lodestone-backed one, for end-to-end testing.
	Characters xivchar.CharacterService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("xivchar"),
		kong.Description("Look up Final Fantasy XIV characters on the Lodestone."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'xivchar --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	characters := m.Characters
	if characters == nil {
		origin, err := xivchar.Origin(cli.Lang)
		if err != nil {
			return err
		}

		fetcher := xivslog.NewLoggingFetcher(xivhttp.NewFetcher(
			xivhttp.WithTimeout(cli.Timeout),
			xivhttp.WithRateLimit(cli.RPS),
		), logger)
		defer fetcher.Close()

		extractor := goquery.NewExtractor(origin, goquery.WithMalformedFunc(func(err error) {
			logger.Debug("malformed entry", "reason", xivchar.ErrorMessage(err))
		}))

		characters = xivhttp.NewCharacterService(fetcher, extractor, origin,
			xivhttp.WithRetryDelays(RetryDelays(cli.Retries)),
			xivhttp.WithRetryLogger(func(format string, args ...any) {
				logger.Warn(fmt.Sprintf(format, args...))
			}),
		)
	}
	deps.Characters = xivslog.NewLoggingCharacterService(characters, logger)

	return kongCtx.Run(deps)
}

// RetryDelays returns n backoff delays following the default schedule,
// doubling past its end.
func RetryDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := xivhttp.DefaultRetryDelays()
	for len(delays) < n {
		delays = append(delays, 2*delays[len(delays)-1])
	}
	return delays[:n]
}
