package root

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nchoosek/tt2nck/internal/config"
	"github.com/nchoosek/tt2nck/internal/search"
	"github.com/nchoosek/tt2nck/internal/truthtable"
	"github.com/nchoosek/tt2nck/pkg/nck"
)

func NewRootCmd() *cobra.Command {
	var (
		workers    int
		chunkSize  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "tt2nck [file]",
		Short: "Compiles a boolean truth table into an equivalent NchooseK constraint",
		Long: `Compiles a boolean truth table into an equivalent NchooseK constraint.
The table is read from the given file, or from standard input when no
file is given. One row per line; tokens are 0/1, F/T or f/t; '#' starts
a comment. For instance:

# conjunction: C = A and B
0 0 0
0 1 0
1 0 0
1 1 1

The rows listed are the valid rows; every other assignment of the same
width is invalid. The output names one port per column (A, B, C, ...),
repeated per the discovered coefficient vector, and the set of
admissible true-port counts.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
					return fmt.Errorf("file (%s) not found", args[0])
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}
			if cmd.Flags().Changed("chunk-size") {
				cfg.ChunkSize = chunkSize
			}

			in := cmd.InOrStdin()
			if len(args) == 1 {
				tableFile, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("error opening truth table file (%s): %w", args[0], err)
				}
				defer tableFile.Close()
				in = tableFile
			}
			return compile(cmd, in, cfg)
		},
	}

	rootCmd.Flags().IntVar(&workers, "workers", 0, "maximum number of parallel workers (default 2x the CPU count)")
	rootCmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "number of candidate vectors evaluated per task")
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file (keys: workers, chunkSize)")

	return rootCmd
}

func compile(cmd *cobra.Command, in io.Reader, cfg config.Config) error {
	table, err := truthtable.Parse(in)
	if err != nil {
		return fmt.Errorf("error parsing truth table: %w", err)
	}
	valid, invalid := table.Partition()

	s, err := search.New(table.NCols(), valid, invalid,
		search.WithWorkers(cfg.Workers),
		search.WithChunkSize(cfg.ChunkSize))
	if err != nil {
		return err
	}
	coeffs, err := s.FindFirst(cmd.Context())
	if err != nil {
		return err
	}

	constraint := nck.FromCoefficients(coeffs, search.Tallies(coeffs, valid))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Repetitions: %s (%d total)\n", coeffs, coeffs.Total())
	fmt.Fprintf(out, "Tallies:     %s\n", constraint.TallyList())
	fmt.Fprintf(out, "Example:     %s\n", constraint)
	return nil
}
