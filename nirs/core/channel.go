package core

import "fmt"

// HbType identifies the hemoglobin species of a concentration channel.
type HbType int

const (
	// HbO is oxygenated hemoglobin.
	HbO HbType = iota
	// HbR is deoxygenated hemoglobin.
	HbR
)

// String returns the conventional lower-case label ("hbo" or "hbr").
func (t HbType) String() string {
	switch t {
	case HbO:
		return "hbo"
	case HbR:
		return "hbr"
	default:
		return fmt.Sprintf("HbType(%d)", int(t))
	}
}

// Valid reports whether t is one of the defined species.
func (t HbType) Valid() bool {
	return t == HbO || t == HbR
}

// HbRecording is a concentration-change recording with its channel labels.
// Data has one row per entry of Names and Types.
type HbRecording struct {
	Data  [][]float64
	Names []string
	Types []HbType
}

// Validate checks that the recording is rectangular and that the label
// sequences match its channel count and hold only defined types.
func (r HbRecording) Validate() error {
	channels, _, err := Shape(r.Data)
	if err != nil {
		return err
	}
	if len(r.Names) != channels || len(r.Types) != channels {
		return fmt.Errorf("core: %d channels but %d names and %d types: %w",
			channels, len(r.Names), len(r.Types), ErrInvalidInput)
	}
	for i, t := range r.Types {
		if !t.Valid() {
			return fmt.Errorf("core: channel %d has %v: %w", i, t, ErrInvalidInput)
		}
	}
	return nil
}
