package b2jpsieta

import (
	"fmt"
	"strings"

	"github.com/decibelcooper/b2jpsieta/modes"
)

// ModeFlags collects repeated --mode values. With no value set, Modes
// returns every mode.
type ModeFlags struct {
	Array []modes.Mode
}

func (f *ModeFlags) Set(valueStr string) error {
	var parsed []modes.Mode
	for _, s := range strings.Split(valueStr, ",") {
		m, err := modes.ParseMode(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		parsed = append(parsed, m)
	}
	f.Array = append(f.Array, parsed...)
	return nil
}

func (f *ModeFlags) String() string {
	return fmt.Sprint(f.Array)
}

func (f *ModeFlags) Type() string {
	return "mode"
}

func (f *ModeFlags) Modes() []modes.Mode {
	if len(f.Array) == 0 {
		return modes.All()
	}
	return f.Array
}
