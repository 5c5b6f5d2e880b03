package hclconfig

import (
	"fmt"
	"time"

	"github.com/specialistvlad/gridsheet/internal/config"
)

// translate converts the HCL-specific schema into the agnostic model.
func translate(root *fileRoot) (*config.Model, error) {
	model := &config.Model{}

	if s := root.Sheet; s != nil {
		for name, v := range map[string]*int{
			"rows":        s.Rows,
			"cols":        s.Cols,
			"cell_width":  s.CellWidth,
			"cell_height": s.CellHeight,
		} {
			if v != nil && *v <= 0 {
				return nil, fmt.Errorf("sheet.%s must be positive, got %d", name, *v)
			}
		}
		if s.Overscan != nil && *s.Overscan < 0 {
			return nil, fmt.Errorf("sheet.overscan must not be negative, got %d", *s.Overscan)
		}

		model.Sheet = config.Sheet{
			Rows:        deref(s.Rows),
			Cols:        deref(s.Cols),
			CellWidth:   deref(s.CellWidth),
			CellHeight:  deref(s.CellHeight),
			Overscan:    deref(s.Overscan),
			CyclePolicy: deref(s.CyclePolicy),
		}
	}

	if lb := root.Log; lb != nil {
		model.Log = config.Log{
			Level:  deref(lb.Level),
			Format: deref(lb.Format),
			File:   deref(lb.File),
		}
	}

	if ui := root.UI; ui != nil && ui.ResizeDebounce != nil {
		d, err := time.ParseDuration(*ui.ResizeDebounce)
		if err != nil {
			return nil, fmt.Errorf("ui.resize_debounce: %w", err)
		}
		if d < 0 {
			return nil, fmt.Errorf("ui.resize_debounce must not be negative, got %s", d)
		}
		model.UI.ResizeDebounce = &d
	}

	return model, nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
