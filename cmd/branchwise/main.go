// Package main provides the CLI entry point for branchwise.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/branchwise-go/internal/config"
	"github.com/ukaji3/branchwise-go/internal/logging"
	"github.com/ukaji3/branchwise-go/pkg/branchwise"
	"github.com/ukaji3/branchwise-go/pkg/branchwise/models"
	"go.uber.org/zap"
)

// Output is the --json result of a generation run.
type Output struct {
	Success  bool                   `json:"success"`
	Output   string                 `json:"output,omitempty"`
	Sheets   []models.SheetReport   `json:"sheets,omitempty"`
	Skipped  []models.SkippedBranch `json:"skipped,omitempty"`
	RowCount int                    `json:"row_count,omitempty"`
	Error    string                 `json:"error,omitempty"`
	Duration string                 `json:"duration"`
}

type cli struct {
	configPath string
	inputPath  string
	outputPath string
	skipEmpty  bool
	jsonOutput bool
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:   "branchwise",
		Short: "Split station details into one spreadsheet sheet per branch",
		Long: `branchwise reads the station details CSV, sorts stations by stipend and
writes a formatted workbook with one sheet per branch code.

Run without arguments to convert StationDetails.csv in the current directory.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.run,
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Print the result as JSON")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&c.inputPath, "input", "i", "", "Station details CSV (default: "+branchwise.DefaultInput+")")
	rootCmd.Flags().StringVarP(&c.outputPath, "output", "o", "", "Output workbook (default: "+branchwise.DefaultOutput+")")
	rootCmd.Flags().BoolVar(&c.skipEmpty, "skip-empty", false, "Leave out sheets for branches without stations")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "inspect [output.xlsx]",
		Short: "List the sheets and station counts of a generated workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  c.inspect,
	})

	return rootCmd
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.Input = c.inputPath
	}
	if flags.Changed("output") {
		cfg.Output = c.outputPath
	}
	if flags.Changed("skip-empty") {
		cfg.SkipEmpty = c.skipEmpty
	}
	c.cfg = cfg

	logger, err := logging.New(cfg.Logging, c.verbose)
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	start := time.Now()
	// Generation settings are only checked when generating
	if err := c.cfg.Validate(); err != nil {
		return err
	}
	opts := c.cfg.Options()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := branchwise.Generate(ctx, opts, c.logger)
	if err != nil {
		if c.jsonOutput {
			_ = emitJSON(cmd.OutOrStdout(), Output{
				Success:  false,
				Error:    err.Error(),
				Duration: time.Since(start).String(),
			})
		}
		return fmt.Errorf("generation failed: %w", err)
	}

	if c.jsonOutput {
		return emitJSON(cmd.OutOrStdout(), Output{
			Success:  true,
			Output:   report.Output,
			Sheets:   report.Sheets,
			Skipped:  report.Skipped,
			RowCount: report.InputRows,
			Duration: time.Since(start).String(),
		})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s saved to '%s' successfully\n", opts.OutputPath, report.Output)
	return nil
}

func (c *cli) inspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", path)
	}

	wb, err := branchwise.Inspect(path)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if c.jsonOutput {
		sheets := make([]models.SheetReport, 0, len(wb.Sheets))
		for _, s := range wb.Sheets {
			sheets = append(sheets, models.SheetReport{Name: s.Name, Rows: s.Table.Len()})
		}
		return emitJSON(out, sheets)
	}

	fmt.Fprintf(out, "%s: %d sheets\n", wb.BookName, len(wb.Sheets))
	for _, s := range wb.Sheets {
		fmt.Fprintf(out, "  %-12s %d\n", s.Name, s.Table.Len())
	}
	return nil
}

func emitJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
