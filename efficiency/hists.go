package efficiency

import (
	"fmt"
	"os"
	"path/filepath"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
)

// WriteHistograms stores the Mbc histogram of every row in the ROOT file
// fname, keyed by mode name.
func (t *Table) WriteHistograms(fname string) error {
	if err := os.MkdirAll(filepath.Dir(fname), 0o755); err != nil {
		return err
	}
	f, err := groot.Create(fname)
	if err != nil {
		return fmt.Errorf("efficiency: %w", err)
	}

	for _, r := range t.Rows {
		if r.Count.Mbc == nil {
			continue
		}
		if err := f.Put(string(r.Mode), rhist.NewH1DFrom(r.Count.Mbc)); err != nil {
			f.Close()
			return fmt.Errorf("efficiency: %s: %w", r.Mode, err)
		}
	}
	return f.Close()
}
