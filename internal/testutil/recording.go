package testutil

// Clone returns a deep copy of rec, for asserting that a call left its
// input untouched.
func Clone(rec [][]float64) [][]float64 {
	if rec == nil {
		return nil
	}
	out := make([][]float64, len(rec))
	for i, row := range rec {
		out[i] = append([]float64(nil), row...)
	}
	return out
}
