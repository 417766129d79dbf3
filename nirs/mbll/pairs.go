package mbll

import (
	"fmt"
	"sort"

	"github.com/cwbudde/algo-fnirs/nirs/core"
)

// pair is a location with the row indices of its two wavelength channels,
// kept in input order.
type pair struct {
	name   string
	first  int
	second int
}

// pairChannels groups row indices by name and returns one pair per unique
// name in ascending name order. Every name must occur exactly twice.
func pairChannels(names []string) ([]pair, error) {
	byName := make(map[string][]int, len(names)/2)
	for i, n := range names {
		byName[n] = append(byName[n], i)
	}

	keys := make([]string, 0, len(byName))
	for n := range byName {
		keys = append(keys, n)
	}
	sort.Strings(keys)

	out := make([]pair, 0, len(keys))
	for _, n := range keys {
		idx := byName[n]
		if len(idx) != 2 {
			return nil, fmt.Errorf("mbll: location %q has %d channels, want 2: %w",
				n, len(idx), core.ErrInvalidInput)
		}
		out = append(out, pair{name: n, first: idx[0], second: idx[1]})
	}
	return out, nil
}
