package chartjs

import (
	"errors"
	"fmt"
	"sync"
)

var ErrDefaultsApplied = errors.New("chartjs: global defaults already applied")

type Font struct {
	Family string `json:"family" yaml:"family"`
	Size   int    `json:"size" yaml:"size"`
}

// Defaults mirrors the subset of Chart.defaults the dashboard sets: the
// font used for every label and the default text color.
type Defaults struct {
	Font  Font   `json:"font" yaml:"font"`
	Color string `json:"color" yaml:"color"`
}

// StockDefaults returns the dashboard's house style.
func StockDefaults() Defaults {
	return Defaults{
		Font:  Font{Family: "Segoe UI", Size: 14},
		Color: "#333",
	}
}

func (d Defaults) Validate() error {
	if d.Font.Family == "" {
		return errors.New("chartjs: default font family is empty")
	}
	if d.Font.Size <= 0 {
		return fmt.Errorf("chartjs: default font size must be positive, got %d", d.Font.Size)
	}
	if d.Color == "" {
		return errors.New("chartjs: default color is empty")
	}
	return nil
}

var (
	globalOnce     sync.Once
	globalMu       sync.RWMutex
	globalDefaults *Defaults
)

// ApplyGlobalDefaults sets the process-wide defaults. Only the first call
// takes effect; later calls return ErrDefaultsApplied.
func ApplyGlobalDefaults(d Defaults) error {
	if err := d.Validate(); err != nil {
		return err
	}
	applied := false
	globalOnce.Do(func() {
		globalMu.Lock()
		globalDefaults = &d
		globalMu.Unlock()
		applied = true
	})
	if !applied {
		return ErrDefaultsApplied
	}
	return nil
}

// GlobalDefaults returns the process-wide defaults, or StockDefaults when
// none were applied.
func GlobalDefaults() Defaults {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalDefaults == nil {
		return StockDefaults()
	}
	return *globalDefaults
}
