package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/decibelcooper/b2jpsieta"
	"github.com/decibelcooper/b2jpsieta/decay"
)

var (
	opts     b2jpsieta.Options
	modeFlag b2jpsieta.ModeFlags
)

var rootCmd = &cobra.Command{
	Use:   "decaychain [decay declarations]...",
	Short: "Resolve decay declarations into final-state particles, head and vertex-fit decay string",
	Long: `decaychain resolves the decay declarations of each requested mode, or the
declarations given as arguments, and prints the final-state particles, the
head particle and the nested decay string passed to the vertex fit.

ex:
 $> decaychain --mode jpsi2ee_eta2gammagamma
 $> decaychain "B0 -> J/psi eta" "J/psi -> e+ e-" "eta -> gamma gamma"`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	opts.Register(rootCmd)
	rootCmd.Flags().Var(&modeFlag, "mode", "decay mode (repeatable, default: all modes)")
}

func main() {
	err := rootCmd.Execute()
	opts.Close()
	if err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if len(args) > 0 {
		chain, err := decay.NewChain(args)
		if err != nil {
			return err
		}
		return printChain(out, "arguments", chain)
	}

	for _, m := range modeFlag.Modes() {
		chain, err := opts.Config.Chain(m)
		if err != nil {
			return fmt.Errorf("%s: %w", m, err)
		}
		opts.Logger.Debug("resolved chain", zap.Stringer("mode", m), zap.Strings("lines", opts.Config.SubDecays(m)))
		if err := printChain(out, m.String(), chain); err != nil {
			return err
		}
	}
	return nil
}

func printChain(w io.Writer, name string, chain *decay.Chain) error {
	head, err := chain.Head()
	if err != nil {
		return err
	}
	decayString, err := chain.Render()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s:\n  head:  %s\n  fsps:  %s\n  chain: %s\n",
		name, head, strings.Join(chain.FinalStateParticles(), " "), decayString)
	return err
}
