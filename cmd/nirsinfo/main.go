// Command nirsinfo prints interpolated hemoglobin extinction coefficients
// and differential pathlength factors for a wavelength pair.
//
// Usage:
//
//	nirsinfo [flags] wavelength1 wavelength2
//
// Without -table it prints one row per compiled-in reference dataset.
//
// Examples:
//
//	nirsinfo 760 850
//	nirsinfo -table gratzer -age 8 690 830
//	nirsinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-fnirs/nirs/core"
	"github.com/cwbudde/algo-fnirs/nirs/extinction"
	"github.com/cwbudde/algo-fnirs/nirs/mbll"
)

func main() {
	table := flag.String("table", "", "reference dataset (only gratzer is bundled); empty for all")
	age := flag.Float64("age", 25, "subject age in years for the DPF")
	list := flag.Bool("list", false, "list datasets and their wavelength ranges")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: nirsinfo [flags] wavelength1 wavelength2\n\n")
		fmt.Fprintf(os.Stderr, "Prints extinction coefficients [1/(cm·M)] and DPFs for a wavelength pair.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  nirsinfo 760 850\n")
		fmt.Fprintf(os.Stderr, "  nirsinfo -table gratzer -age 8 690 830\n")
		fmt.Fprintf(os.Stderr, "  nirsinfo -list\n")
	}
	flag.Parse()

	logger := newLogger(*verbose)
	defer func() { _ = logger.Sync() }()

	if *list {
		if err := printList(os.Stdout, extinction.Default()); err != nil {
			logger.Fatal("list datasets", zap.Error(err))
		}
		return
	}

	wls, err := parseWavelengths(flag.Args())
	if err != nil {
		flag.Usage()
		logger.Fatal("invalid arguments", zap.Error(err))
	}

	datasets := extinction.Datasets()
	if *table != "" {
		d, err := extinction.ParseDataset(*table)
		if err != nil {
			logger.Fatal("invalid -table", zap.Error(err))
		}
		if !extinction.Bundled(d) {
			logger.Fatal("invalid -table", zap.Error(fmt.Errorf("%v: %w", d, extinction.ErrNotBundled)))
		}
		datasets = []extinction.Dataset{d}
	}
	logger.Debug("query", zap.Ints("wavelengths", wls), zap.Float64("age", *age), zap.Int("datasets", len(datasets)))

	if err := printCoefficients(os.Stdout, logger, extinction.Default(), datasets, wls, *age); err != nil {
		logger.Fatal("print coefficients", zap.Error(err))
	}
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func parseWavelengths(args []string) ([]int, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("need 2 wavelengths, got %d: %w", len(args), core.ErrInvalidInput)
	}
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("wavelength %q: %w", a, core.ErrInvalidInput)
		}
		out[i] = v
	}
	return out, nil
}

func printList(w io.Writer, reg *extinction.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Dataset\tFrom [nm]\tTo [nm]\n-------\t---------\t-------\n"); err != nil {
		return err
	}
	for _, d := range extinction.Datasets() {
		t, err := reg.Table(d)
		if errors.Is(err, extinction.ErrNotBundled) {
			if _, err := fmt.Fprintf(tw, "%s\tnot bundled\t\n", d); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
		lo, hi := t.Range()
		if _, err := fmt.Fprintf(tw, "%s\t%g\t%g\n", d, lo, hi); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// printCoefficients writes one row per dataset. Datasets that are not
// bundled or do not cover the pair are logged and skipped; other errors
// abort.
func printCoefficients(w io.Writer, logger *zap.Logger, p extinction.Provider, datasets []extinction.Dataset, wls []int, age float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Dataset\tHbO@%[1]d\tHbR@%[1]d\tHbO@%[2]d\tHbR@%[2]d\tDet\tDPF@%[1]d\tDPF@%[2]d\n", wls[0], wls[1]); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-------\t-------\t-------\t-------\t-------\t---\t-------\t-------\n"); err != nil {
		return err
	}

	for _, d := range datasets {
		e, err := p.Coefficients(wls, d)
		if errors.Is(err, extinction.ErrNotBundled) {
			logger.Debug("dataset not bundled", zap.Stringer("dataset", d))
			continue
		}
		if errors.Is(err, core.ErrOutOfRange) {
			logger.Warn("dataset does not cover wavelengths", zap.Stringer("dataset", d), zap.Error(err))
			continue
		}
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.4g\t%.3f\t%.3f\n",
			d,
			e.At(0, 0), e.At(0, 1),
			e.At(1, 0), e.At(1, 1),
			mat.Det(e),
			mbll.DPF(float64(wls[0]), age),
			mbll.DPF(float64(wls[1]), age),
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}
