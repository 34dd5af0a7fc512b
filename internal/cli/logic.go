package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/dux/internal/walk"
)

func logic(options walk.Options, flags Flags) error {
	enableProgress := flags.Output != "json" && isatty.IsTerminal(os.Stderr.Fd())

	ctx := context.Background()

	// Simple progress callback that prints directly to stderr
	var progressHook func(entries, bytes int64)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(entries, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d entries, %s",
				entries, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	// With --verbose every failing path is printed as it is hit; the
	// clear-line prefix keeps the messages from landing on top of the
	// progress line.
	if flags.Verbose {
		prefix := ""
		if enableProgress {
			prefix = "\r\033[2K"
		}

		options.ErrorHook = func(walkErr error) {
			fmt.Fprintf(os.Stderr, "%sdux: %v\n", prefix, walkErr)
		}
	}

	stats, err := walk.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	// A failed root still leaves the remaining roots measured; print what
	// was collected before reporting the failure.
	if stats != nil {
		var printErr error

		switch flags.Output {
		case "json":
			printErr = PrintJSON(stats, os.Stdout)
		default:
			pretty := isatty.IsTerminal(os.Stdout.Fd())
			printErr = PrintText(stats, flags, pretty, os.Stdout)
		}

		if stats.ErrorCount > 0 && !flags.Verbose && flags.Output != "json" {
			fmt.Fprintf(os.Stderr, "dux: %d entries could not be read; the totals may be incomplete. Re-run with -v/--verbose to print all errors.\n",
				stats.ErrorCount)
		}

		if err == nil {
			err = printErr
		}
	}

	return err
}
