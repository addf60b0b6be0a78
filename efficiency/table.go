package efficiency

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/decibelcooper/b2jpsieta/config"
	"github.com/decibelcooper/b2jpsieta/modes"
	"github.com/decibelcooper/b2jpsieta/yields"
)

type Row struct {
	Mode  modes.Mode
	NGen  int
	Count Count
	Eff   float64
	Yield yields.Info
}

func NewRow(m modes.Mode, cnt Count, cfg *config.Config) (Row, error) {
	eff := float64(cnt.Signal) / float64(cfg.NGen)
	y, err := yields.Predict(m, cfg.BranchingRatios, cfg.NumBB, eff)
	if err != nil {
		return Row{}, err
	}
	return Row{Mode: m, NGen: cfg.NGen, Count: cnt, Eff: eff, Yield: y}, nil
}

// LaTeX renders the row as one line of the efficiency tabular.
func (r Row) LaTeX() string {
	eff := strconv.FormatFloat(100*r.Eff, 'f', 2, 64)
	return fmt.Sprintf(`$%s$ & %d & $%d$ & $%s\%%$ & %.2f \\`,
		r.Mode.LaTeX(), r.NGen, r.Count.Signal, eff, r.Yield.Total)
}

type Table struct {
	Rows []Row
}

// Tabulate counts every mode concurrently. Rows keep the order of ms.
func Tabulate(ctx context.Context, c Counter, cfg *config.Config, ms []modes.Mode) (*Table, error) {
	rows := make([]Row, len(ms))
	g, ctx := errgroup.WithContext(ctx)
	for i, m := range ms {
		g.Go(func() error {
			cnt, err := c.Count(ctx, m)
			if err != nil {
				return err
			}
			rows[i], err = NewRow(m, cnt, cfg)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Table{Rows: rows}, nil
}

var (
	tableHead = []string{
		`\begin{table}`,
		`\caption{Summary of detection efficiencies for each mode studied in this analysis.}`,
		`\label{tab:det_effs}`,
		`\begin{tabular}{ccccc}`,
		`\hline`,
		`Mode & \# Gen & \# Signal & $\epsilon_{Det}$ & Pred. Yield \\`,
		`\hline\hline`,
	}
	tableTail = []string{
		`\end{tabular}`,
		`\end{table}`,
	}
)

func (t *Table) WriteLaTeX(w io.Writer) error {
	lines := make([]string, 0, len(tableHead)+len(t.Rows)+len(tableTail))
	lines = append(lines, tableHead...)
	for _, r := range t.Rows {
		lines = append(lines, r.LaTeX())
	}
	lines = append(lines, tableTail...)

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
