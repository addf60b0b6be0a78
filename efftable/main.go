package main

import (
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/decibelcooper/b2jpsieta"
	"github.com/decibelcooper/b2jpsieta/efficiency"
)

var (
	opts     b2jpsieta.Options
	modeFlag b2jpsieta.ModeFlags
	output   string
	hists    string
)

var rootCmd = &cobra.Command{
	Use:   "efftable",
	Short: "Tabulate detection efficiencies from merged ntuples",
	Long: `efftable counts truth-matched B0 candidates in the merged ntuple of each
decay mode and writes a LaTeX table of detection efficiencies and predicted
yields. Use -o - to write to standard output. The Mbc distribution of the
truth-matched candidates of each mode is saved to a ROOT file next to the
table.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	opts.Register(rootCmd)
	rootCmd.Flags().Var(&modeFlag, "mode", "decay mode (repeatable, default: all modes)")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <tables>/detection_efficiency.tex)")
	rootCmd.Flags().StringVar(&hists, "hists", "", "Mbc histogram ROOT file (default: <tables>/detection_mbc.root)")
}

func main() {
	err := rootCmd.Execute()
	opts.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	cfg := opts.Config
	ms := modeFlag.Modes()
	opts.Logger.Info("making detection efficiency table", zap.Stringers("modes", ms))

	table, err := efficiency.Tabulate(ctx, efficiency.NewNtupleCounter(cfg.MergedFile), cfg, ms)
	if err != nil {
		return err
	}
	for _, row := range table.Rows {
		opts.Logger.Debug("efficiency",
			zap.Stringer("mode", row.Mode),
			zap.Int64("candidates", row.Count.Candidates),
			zap.Int64("signal", row.Count.Signal),
			zap.Float64("eff", row.Eff),
			zap.Float64("yield", row.Yield.Total),
		)
		if row.Count.Signal > 0 {
			opts.Logger.Info("signal Mbc",
				zap.Stringer("mode", row.Mode),
				zap.Float64("mean", row.Count.Mbc.XMean()),
				zap.Float64("stddev", row.Count.Mbc.XStdDev()),
			)
		}
	}

	if hists == "" {
		hists = filepath.Join(cfg.Locations.Tables, "detection_mbc.root")
	}
	if err := table.WriteHistograms(hists); err != nil {
		return err
	}
	opts.Logger.Info("wrote histograms", zap.String("path", hists))

	if output == "-" {
		return table.WriteLaTeX(cmd.OutOrStdout())
	}
	if output == "" {
		output = filepath.Join(cfg.Locations.Tables, "detection_efficiency.tex")
	}
	if err := writeFile(output, table); err != nil {
		return err
	}
	opts.Logger.Info("wrote table", zap.String("path", output))
	return nil
}

func writeFile(path string, table *efficiency.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := table.WriteLaTeX(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
