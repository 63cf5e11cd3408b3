package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/vijaykmarupuudi/planhub/internal/api"
	"github.com/vijaykmarupuudi/planhub/internal/cli"
	"github.com/vijaykmarupuudi/planhub/internal/cli/formatter"
	"github.com/vijaykmarupuudi/planhub/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env in the working directory fills in whatever the real
	// environment leaves unset; existing variables always win.
	_ = godotenv.Load()

	app := &cli.App{
		Config:       api.LoadConfig(),
		SnapshotPath: os.Getenv("PLANHUB_SNAPSHOT"),
	}

	logW, closeLog, err := openLog(os.Getenv("PLANHUB_LOG"))
	if err != nil {
		return err
	}
	if logW != nil {
		defer closeLog()
		app.Observers = append(app.Observers, service.NewLogUseCaseObserver(logW))
		app.CallObserver = api.NewLogObserver(logW)
	}

	stdoutTTY := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if os.Getenv("PLANHUB_NO_COLOR") != "" || !stdoutTTY {
		formatter.DisableColor()
	}
	app.Interactive = func() bool {
		return stdoutTTY
	}

	return cli.NewRootCmd(app).Execute()
}

// openLog maps PLANHUB_LOG to a destination: empty disables telemetry,
// "stderr" keeps it on the terminal, anything else appends to that file.
func openLog(dest string) (io.Writer, func(), error) {
	switch dest {
	case "":
		return nil, nil, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	default:
		f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
}
