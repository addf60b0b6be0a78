// Package efficiency tabulates detection efficiencies of the decay modes
// from their merged reconstruction ntuples.
package efficiency

import (
	"context"
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"
	"go-hep.org/x/hep/hbook"

	"github.com/decibelcooper/b2jpsieta/modes"
)

// Mbc histogram binning. The range covers the B0 selection window
// 5.1 < Mbc < 5.4 with a sideband below it.
const (
	nMbcBins = 125
	mbcLow   = 4.9
	mbcHigh  = 5.4
)

// Count summarises the candidates of one mode.
type Count struct {
	Candidates int64
	Signal     int64
	// Mbc of truth-matched candidates.
	Mbc *hbook.H1D
}

type Counter interface {
	Count(ctx context.Context, m modes.Mode) (Count, error)
}

// NtupleCounter counts truth-matched candidates in the B0 tree of each
// mode's merged ntuple file.
type NtupleCounter struct {
	File func(modes.Mode) string
	Tree string
}

func NewNtupleCounter(file func(modes.Mode) string) *NtupleCounter {
	return &NtupleCounter{File: file, Tree: "b0"}
}

func (c *NtupleCounter) Count(ctx context.Context, m modes.Mode) (Count, error) {
	if err := ctx.Err(); err != nil {
		return Count{}, err
	}

	fname := c.File(m)
	f, err := groot.Open(fname)
	if err != nil {
		return Count{}, fmt.Errorf("efficiency: %s: %w", m, err)
	}
	defer f.Close()

	obj, err := f.Get(c.Tree)
	if err != nil {
		return Count{}, fmt.Errorf("efficiency: %s: %w", fname, err)
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		return Count{}, fmt.Errorf("efficiency: %s: %q is not a tree", fname, c.Tree)
	}

	var isSignal, mbc float64
	r, err := rtree.NewReader(tree, []rtree.ReadVar{
		{Name: "isSignal", Value: &isSignal},
		{Name: "Mbc", Value: &mbc},
	})
	if err != nil {
		return Count{}, fmt.Errorf("efficiency: %s: %w", fname, err)
	}
	defer r.Close()

	cnt := Count{Mbc: hbook.NewH1D(nMbcBins, mbcLow, mbcHigh)}
	cnt.Mbc.Annotation()["name"] = string(m)
	cnt.Mbc.Annotation()["title"] = "Mbc of truth-matched " + string(m) + " candidates"
	err = r.Read(func(rtree.RCtx) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		cnt.Candidates++
		if isSignal > 0.5 {
			cnt.Signal++
			cnt.Mbc.Fill(mbc, 1)
		}
		return nil
	})
	if err != nil {
		return Count{}, fmt.Errorf("efficiency: %s: %w", fname, err)
	}
	return cnt, nil
}
