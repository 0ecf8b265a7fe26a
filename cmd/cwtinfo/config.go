package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-cwt/dsp/conv"
	"github.com/cwbudde/algo-cwt/dsp/cwt"
	"github.com/cwbudde/algo-cwt/dsp/wavelet"
)

const envPrefix = "CWTINFO"

// initConfig binds flags and environment variables and reads the config
// file named by --config, if any.
func (a *app) initConfig(cmd *cobra.Command) error {
	v := a.v
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var lastErr error
	bind := func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}
	}
	cmd.Flags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)
	if lastErr != nil {
		return lastErr
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}
	return nil
}

// bankSettings are the wavelet family parameters.
type bankSettings struct {
	Freqs    []float64
	Cycles   float64
	FS       float64
	NWin     float64
	Complete bool
}

func (a *app) bankSettings() (bankSettings, error) {
	v := a.v
	s := bankSettings{
		Cycles:   v.GetFloat64("cycles"),
		FS:       v.GetFloat64("fs"),
		NWin:     v.GetFloat64("n-win"),
		Complete: v.GetBool("complete"),
	}

	freqs, err := parseFloats(v.GetStringSlice("freqs"))
	if err != nil {
		return s, fmt.Errorf("--freqs: %w", err)
	}
	if len(freqs) == 0 {
		freqs = wavelet.LogFrequencies(v.GetFloat64("fmin"), v.GetFloat64("fmax"), v.GetInt("nfreqs"))
	}
	s.Freqs = freqs
	return s, nil
}

func (s bankSettings) build() (*wavelet.Bank, error) {
	return wavelet.Generate(
		wavelet.Morlet{Complete: s.Complete},
		s.Freqs,
		wavelet.ConstantCycles(len(s.Freqs), s.Cycles),
		s.FS,
		s.NWin,
	)
}

// transformOptions converts the transform flags to cwt options.
func (a *app) transformOptions() ([]cwt.Option, error) {
	v := a.v
	backend, err := conv.BackendByName(v.GetString("backend"))
	if err != nil {
		return nil, err
	}

	var boundary cwt.Boundary
	switch b := strings.ToLower(v.GetString("boundary")); b {
	case "zero":
		boundary = cwt.BoundaryZero
	case "mirror":
		boundary = cwt.BoundaryMirror
	default:
		return nil, fmt.Errorf("unknown boundary %q (zero, mirror)", b)
	}

	opts := []cwt.Option{
		cwt.WithBackend(backend),
		cwt.WithBoundary(boundary),
		cwt.WithWorkers(v.GetInt("workers")),
	}
	if v.GetBool("interp-nan") {
		opts = append(opts, cwt.WithInterpolateNaN())
	}
	return opts, nil
}

// parseFloats parses numbers from fields, each of which may itself hold
// several values separated by commas or whitespace.
func parseFloats(fields []string) ([]float64, error) {
	var out []float64
	for _, field := range fields {
		for _, f := range strings.FieldsFunc(field, isListSeparator) {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}
	}
	return out, nil
}

func isListSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}
