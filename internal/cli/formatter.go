package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/dux/internal/walk"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the final snapshot in JSON format.
func PrintJSON(stats *walk.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintText outputs one size line per root, followed by an optional total.
// With pretty set, sizes are humanized and aligned for terminals; otherwise
// the output is raw bytes with tab separation for scripting.
func PrintText(stats *walk.Stats, flags Flags, pretty bool, writer io.Writer) error {
	if !pretty {
		for _, root := range stats.Roots {
			if _, err := fmt.Fprintf(writer, "%d\t%s\n", root.Size, root.Path); err != nil {
				return err
			}
		}

		if flags.Total {
			if _, err := fmt.Fprintf(writer, "%d\ttotal\n", stats.TotalBytes); err != nil {
				return err
			}
		}

		return nil
	}

	format := humanize.IBytes
	if flags.SizeFormat == "decimal" {
		format = humanize.Bytes
	}

	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', tabwriter.AlignRight)

	for _, root := range stats.Roots {
		fmt.Fprintf(w, "%s\t  %s\n", format(uint64(root.Size)), root.Path) //nolint:gosec // Sizes are never negative
	}

	if flags.Total {
		fmt.Fprintf(w, "%s\t  total\n", format(uint64(stats.TotalBytes))) //nolint:gosec // Sizes are never negative
	}

	return w.Flush()
}
