package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBankCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Print the wavelet kernel bank",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return a.runBank()
		},
	}
	cmd.Flags().Bool("sorted", false, "order kernels by ascending frequency")
	return cmd
}

// kernelRow describes one kernel of a bank.
type kernelRow struct {
	Index  int     `json:"index" yaml:"index"`
	Freq   float64 `json:"freq" yaml:"freq"`
	Cycles float64 `json:"cycles" yaml:"cycles"`
	Length int     `json:"length" yaml:"length"`
	Scale  float64 `json:"scale" yaml:"scale"`
	Energy float64 `json:"energy" yaml:"energy"`
}

type bankReport struct {
	Wavelet    string      `json:"wavelet" yaml:"wavelet"`
	SampleRate float64     `json:"fs" yaml:"fs"`
	NWin       float64     `json:"n_win" yaml:"n_win"`
	MaxLen     int         `json:"max_length" yaml:"max_length"`
	Kernels    []kernelRow `json:"kernels" yaml:"kernels"`
}

func (a *app) runBank() error {
	s, err := a.bankSettings()
	if err != nil {
		return err
	}
	bank, err := s.build()
	if err != nil {
		return err
	}
	if a.v.GetBool("sorted") {
		bank = bank.SortedByFrequency()
	}
	a.logger.Debug("bank generated",
		zap.String("wavelet", bank.Name()),
		zap.Int("kernels", bank.Len()),
		zap.Int("max_length", bank.MaxLen()),
	)

	p := bank.Params
	scales := bank.Scales()
	rep := bankReport{
		Wavelet:    bank.Name(),
		SampleRate: p.FS,
		NWin:       p.NWin,
		MaxLen:     bank.MaxLen(),
		Kernels:    make([]kernelRow, bank.Len()),
	}
	for k := range rep.Kernels {
		rep.Kernels[k] = kernelRow{
			Index:  k,
			Freq:   p.Freqs[k],
			Cycles: p.Cycles[k],
			Length: p.Lengths[k],
			Scale:  scales[k],
			Energy: bank.Energy(k),
		}
	}
	return render(a.out, a.v.GetString("output"), rep, rep.table)
}

func (r bankReport) table(tw *tableWriter) {
	tw.printf("Wavelet:\t%s\n", r.Wavelet)
	tw.printf("Sample rate:\t%g Hz\n", r.SampleRate)
	tw.printf("Window:\t%g sigma\n", r.NWin)
	tw.printf("Max length:\t%d\n", r.MaxLen)
	tw.printf("\n")
	tw.printf("#\tFreq (Hz)\tCycles\tLength\tScale\tEnergy\n")
	for _, k := range r.Kernels {
		tw.printf("%d\t%.4g\t%.4g\t%d\t%.3f\t%.6f\n", k.Index, k.Freq, k.Cycles, k.Length, k.Scale, k.Energy)
	}
}
