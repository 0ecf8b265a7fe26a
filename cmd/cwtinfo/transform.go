package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-cwt/dsp/cwt"
)

func newTransformCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Transform a signal and print per-kernel power",
		Long: `Transform reads a CSV signal (one row per sample, one column per
channel; "-" reads stdin) and prints the time-averaged power of every
kernel and channel. Without --input an impulse probe of --length samples
is transformed instead.`,
		Args: cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.runTransform()
		},
	}
	f := cmd.Flags()
	f.StringP("input", "i", "", `CSV signal file ("-" for stdin)`)
	f.Int("length", 1024, "impulse probe length when --input is not given")
	f.String("backend", "algo-fft", "FFT backend (algo-fft, gonum, go-dsp)")
	f.String("boundary", "zero", "edge handling (zero, mirror)")
	f.Bool("interp-nan", false, "linearly interpolate NaN samples")
	f.Int("workers", 0, "concurrent kernel jobs (0 uses GOMAXPROCS)")
	return cmd
}

type powerRow struct {
	Freq    float64   `json:"freq" yaml:"freq"`
	Channel []float64 `json:"channels" yaml:"channels"`
	Mean    float64   `json:"mean" yaml:"mean"`
}

type transformReport struct {
	Source   string     `json:"source" yaml:"source"`
	Samples  int        `json:"samples" yaml:"samples"`
	Channels int        `json:"channels" yaml:"channels"`
	Boundary string     `json:"boundary" yaml:"boundary"`
	Backend  string     `json:"backend" yaml:"backend"`
	Power    []powerRow `json:"power" yaml:"power"`
}

func (a *app) runTransform() error {
	s, err := a.bankSettings()
	if err != nil {
		return err
	}
	bank, err := s.build()
	if err != nil {
		return err
	}
	opts, err := a.transformOptions()
	if err != nil {
		return err
	}

	signal, source, err := a.loadSignal()
	if err != nil {
		return err
	}
	if err := checkFinite(signal, a.v.GetBool("interp-nan")); err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}
	nt, nc := signal.Dims()

	start := time.Now()
	cube, err := cwt.Transform(bank, cwt.Real(signal), opts...)
	if err != nil {
		return err
	}
	a.logger.Info("transform finished",
		zap.String("source", source),
		zap.Int("samples", nt),
		zap.Int("channels", nc),
		zap.Int("kernels", bank.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	power := cube.Power()
	mean := cube.PowerAcrossChannels()
	rep := transformReport{
		Source:   source,
		Samples:  nt,
		Channels: nc,
		Boundary: a.v.GetString("boundary"),
		Backend:  a.v.GetString("backend"),
		Power:    make([]powerRow, bank.Len()),
	}
	for k := range rep.Power {
		rep.Power[k] = powerRow{
			Freq:    bank.Params.Freqs[k],
			Channel: mat.Row(nil, k, power),
			Mean:    mean[k],
		}
	}
	return render(a.out, a.v.GetString("output"), rep, rep.table)
}

func (a *app) loadSignal() (*mat.Dense, string, error) {
	path := a.v.GetString("input")
	if path == "" {
		n := a.v.GetInt("length")
		m, err := impulse(n)
		return m, fmt.Sprintf("impulse(%d)", n), err
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, "", err
		}
		defer f.Close()
		r = f
	}
	m, err := readSignal(r)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	return m, path, nil
}

func (r transformReport) table(tw *tableWriter) {
	tw.printf("Source:\t%s\n", r.Source)
	tw.printf("Samples:\t%d\n", r.Samples)
	tw.printf("Channels:\t%d\n", r.Channels)
	tw.printf("Boundary:\t%s\n", r.Boundary)
	tw.printf("Backend:\t%s\n", r.Backend)
	tw.printf("\n")
	tw.printf("Freq (Hz)")
	for c := 0; c < r.Channels; c++ {
		tw.printf("\tch%d", c)
	}
	tw.printf("\tMean\n")
	for _, p := range r.Power {
		tw.printf("%.4g", p.Freq)
		for _, v := range p.Channel {
			tw.printf("\t%.6g", v)
		}
		tw.printf("\t%.6g\n", p.Mean)
	}
}
