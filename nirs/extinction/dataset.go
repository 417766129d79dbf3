package extinction

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-fnirs/nirs/core"
)

// Dataset identifies a reference extinction coefficient dataset.
type Dataset int

const (
	Wray Dataset = iota
	Cope
	Gratzer
	Moaveni
	Takatani

	numDatasets
)

var datasetNames = [numDatasets]string{
	Wray:     "wray",
	Cope:     "cope",
	Gratzer:  "gratzer",
	Moaveni:  "moaveni",
	Takatani: "takatani",
}

// String returns the dataset's lower-case name.
func (d Dataset) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Dataset(%d)", int(d))
	}
	return datasetNames[d]
}

// Valid reports whether d is one of the defined datasets.
func (d Dataset) Valid() bool {
	return d >= 0 && d < numDatasets
}

// ParseDataset maps a dataset name such as "wray" to its Dataset.
func ParseDataset(name string) (Dataset, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for d, n := range datasetNames {
		if n == key {
			return Dataset(d), nil
		}
	}
	return 0, fmt.Errorf("extinction: unknown dataset %q: %w", name, core.ErrInvalidInput)
}

// Datasets returns all defined datasets in declaration order.
func Datasets() []Dataset {
	out := make([]Dataset, numDatasets)
	for i := range out {
		out[i] = Dataset(i)
	}
	return out
}
