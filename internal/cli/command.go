package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/dux/internal/walk"
)

// Flags holds the CLI-only settings that do not map onto walk.Options.
type Flags struct {
	// SizeFormat selects decimal (MB) or binary (MiB) units.
	SizeFormat string
	// Total prints a summary line across all roots.
	Total bool
	// Output represents output format (text or json).
	Output string
	// Verbose prints every filesystem error instead of a summary.
	Verbose bool
}

// New builds the root command for the given version.
func New(version string) *cobra.Command {
	var (
		options walk.Options
		flags   Flags
	)

	allowedOutputs := []string{"text", "json"}
	allowedSizeFormats := []string{"binary", "decimal"}

	cmd := &cobra.Command{
		Use:   "dux [flags] [path...]",
		Short: "Compute disk usage for the given filesystem entries",
		Long: heredoc.Doc(`
			dux computes the aggregate storage size of one or more directory
			trees, distributing the traversal over a pool of parallel workers
			instead of a sequential walk.

			Hard-linked files are counted once per run unless --count-links is
			given. Symbolic links are never followed; their own size counts,
			their targets do not.

			Sizes report allocated disk blocks by default; use --apparent-size
			for logical file lengths.
		`),
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if !slices.Contains(allowedOutputs, flags.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", flags.Output, allowedOutputs)
			}

			if !slices.Contains(allowedSizeFormats, flags.SizeFormat) {
				return fmt.Errorf("invalid size format %q: must be one of %v", flags.SizeFormat, allowedSizeFormats)
			}

			options.Paths = args

			return logic(options, flags)
		},
	}

	cmd.Flags().IntVarP(&options.Workers, "threads", "j", 0, "Number of worker threads (default: num cores)")
	cmd.Flags().BoolVarP(&options.ApparentSize, "apparent-size", "b", false, "Compute apparent size instead of disk usage")
	cmd.Flags().BoolVarP(&options.CountLinks, "count-links", "l", false, "Count hard-linked files every time they are seen")
	cmd.Flags().StringVar(&flags.SizeFormat, "size-format", "decimal", "Output format for sizes (decimal: MB, binary: MiB)")
	cmd.Flags().BoolVarP(&flags.Total, "total", "t", false, "Print the total size across all paths")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "text", "Output format: text or json")
	cmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Do not hide filesystem errors")
	cmd.Flags().SortFlags = false

	return cmd
}
