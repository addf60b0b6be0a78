package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/decibelcooper/b2jpsieta"
	"github.com/decibelcooper/b2jpsieta/modes"
	"github.com/decibelcooper/b2jpsieta/recoplan"
)

var (
	opts     b2jpsieta.Options
	modeFlag b2jpsieta.ModeFlags
	outDir   string
)

var rootCmd = &cobra.Command{
	Use:   "recoscript [input-mdst-files]...",
	Short: "Write basf2 reconstruction steering scripts",
	Long: `recoscript writes one basf2 steering script per decay mode. Modes are taken
from --mode, or from the names of the given input files (e.g.
jpsi2ee_eta23pi0_0.root).`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	opts.Register(rootCmd)
	rootCmd.Flags().Var(&modeFlag, "mode", "decay mode (repeatable, default: all modes)")
	rootCmd.Flags().StringVarP(&outDir, "output", "o", ".", "output directory")
}

func main() {
	err := rootCmd.Execute()
	opts.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	ms := modeFlag.Modes()
	if len(args) > 0 {
		ms = nil
		for _, arg := range args {
			m, err := modes.FromFile(arg)
			if err != nil {
				return err
			}
			ms = append(ms, m)
		}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	for _, m := range ms {
		chain, err := opts.Config.Chain(m)
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
		plan, err := recoplan.Build(m, chain, opts.Config)
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}

		path := filepath.Join(outDir, m.String()+".py")
		if err := writeScript(path, plan); err != nil {
			return err
		}
		opts.Logger.Info("wrote steering script",
			zap.Stringer("mode", m),
			zap.String("path", path),
			zap.String("decay", plan.DecayString),
			zap.Int("steps", len(plan.Steps)),
		)
	}
	return nil
}

func writeScript(path string, plan *recoplan.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := plan.WriteScript(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
