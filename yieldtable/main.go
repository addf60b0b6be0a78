package main

import (
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/decibelcooper/b2jpsieta"
	"github.com/decibelcooper/b2jpsieta/efficiency"
	"github.com/decibelcooper/b2jpsieta/yields"
)

var (
	opts     b2jpsieta.Options
	modeFlag b2jpsieta.ModeFlags
	eff      float64
)

var rootCmd = &cobra.Command{
	Use:   "yieldtable",
	Short: "Print predicted signal yields",
	Long: `yieldtable prints the predicted signal yield of each decay mode, the product
of the number of B-Bbar pairs, the branching ratios and the detection
efficiency. The efficiency is counted from the merged ntuples unless
--efficiency is given.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	opts.Register(rootCmd)
	rootCmd.Flags().Var(&modeFlag, "mode", "decay mode (repeatable, default: all modes)")
	rootCmd.Flags().Float64Var(&eff, "efficiency", 0, "detection efficiency used for every mode instead of counting ntuples")
}

func main() {
	err := rootCmd.Execute()
	opts.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := opts.Config
	ms := modeFlag.Modes()

	var infos []yields.Info
	if cmd.Flags().Changed("efficiency") {
		for _, m := range ms {
			info, err := yields.Predict(m, cfg.BranchingRatios, cfg.NumBB, eff)
			if err != nil {
				return err
			}
			infos = append(infos, info)
		}
	} else {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		table, err := efficiency.Tabulate(ctx, efficiency.NewNtupleCounter(cfg.MergedFile), cfg, ms)
		if err != nil {
			return err
		}
		for _, row := range table.Rows {
			infos = append(infos, row.Yield)
		}
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "mode\tnum_bb\tB0->J/psi eta\tJ/psi\teta\tdet\ttot\trel. unc.")
	for _, info := range infos {
		opts.Logger.Debug("predicted yield", zap.Stringer("mode", info.Mode), zap.Float64("tot", info.Total))
		fmt.Fprintf(w, "%s\t%.3g\t%.3g\t%.4g\t%.4g\t%.4f\t%.2f\t%.1f%%\n",
			info.Mode, info.NumBB, info.B2JPsiEta, info.JPsi, info.Eta, info.Det, info.Total, 100*info.RelUncertainty)
	}
	return w.Flush()
}
