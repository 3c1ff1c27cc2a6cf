// Package report renders wave spectrum estimates for people.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/RyanBlaney/sonido-swell/estimation"
)

// DefaultLines is the number of spectrum lines printed by default.
const DefaultLines = 9

// Header precedes the spectrum lines.
const Header = "Wave spectrum: (frequency, wave energy spectral density)"

// ErrNoFiniteBins reports a spectrum whose reported bins are all infinite.
var ErrNoFiniteBins = errors.New("spectrum has no finite bins")

// Printer writes a spectrum as "frequency Hz, density" lines, sampling the
// bins from DC to Nyquist at an even interval.
type Printer struct {
	out   io.Writer
	lines int
}

// NewPrinter creates a printer writing at most about lines lines to out.
// Values below 2 select DefaultLines.
func NewPrinter(out io.Writer, lines int) *Printer {
	if lines < 2 {
		lines = DefaultLines
	}
	return &Printer{out: out, lines: lines}
}

// Interval returns the bin step used for a spectrum whose Nyquist bin is
// nyquist.
func (p *Printer) Interval(nyquist int) int {
	if nyquist > p.lines {
		return nyquist / (p.lines - 1)
	}
	return 1
}

// Print writes the header and the sampled bins of s.
func (p *Printer) Print(s *estimation.Spectrum) error {
	if _, err := fmt.Fprintln(p.out, Header); err != nil {
		return err
	}

	if s.Len() == 0 {
		return nil
	}

	nyquist := s.Nyquist()
	for i := 0; i <= nyquist; i += p.Interval(nyquist) {
		if _, err := fmt.Fprintf(p.out, "%f Hz, %f\n", s.Frequency(i), s.At(i)); err != nil {
			return err
		}
	}
	return nil
}

// Summary describes the reported half of a spectrum, bins 0..Nyquist.
type Summary struct {
	Bins          int     `json:"bins"`
	InfiniteBins  int     `json:"infinite_bins"`
	PeakBin       int     `json:"peak_bin"`
	PeakFrequency float64 `json:"peak_frequency_hz"`
	PeakDensity   float64 `json:"peak_density"`
	MeanDensity   float64 `json:"mean_density"`
	TotalEnergy   float64 `json:"total_energy"`
}

// Summarise finds the spectral peak and the total finite energy of s.
// Infinite bins, where the RAO has no response, are counted but otherwise
// left out.
func Summarise(s *estimation.Spectrum) (Summary, error) {
	nyquist := s.Nyquist()
	summary := Summary{Bins: nyquist + 1, PeakBin: -1}

	finite := make(stats.Float64Data, 0, nyquist+1)
	index := make([]int, 0, nyquist+1)
	for i := 0; i <= nyquist && i < s.Len(); i++ {
		v := float64(s.At(i))
		if math.IsInf(v, 0) || math.IsNaN(v) {
			summary.InfiniteBins++
			continue
		}
		finite = append(finite, v)
		index = append(index, i)
	}
	if len(finite) == 0 {
		return summary, ErrNoFiniteBins
	}

	peak, err := stats.Max(finite)
	if err != nil {
		return summary, err
	}
	total, err := stats.Sum(finite)
	if err != nil {
		return summary, err
	}
	mean, err := stats.Mean(finite)
	if err != nil {
		return summary, err
	}

	for j, v := range finite {
		if v == peak {
			summary.PeakBin = index[j]
			break
		}
	}
	summary.PeakDensity = peak
	summary.PeakFrequency = s.Frequency(summary.PeakBin)
	summary.TotalEnergy = total
	summary.MeanDensity = mean
	return summary, nil
}

// PrintSummary writes a one-line digest of summary.
func PrintSummary(w io.Writer, summary Summary) error {
	_, err := fmt.Fprintf(w, "Peak: %f Hz, %f (total energy %f over %d bins, %d unbounded)\n",
		summary.PeakFrequency, summary.PeakDensity, summary.TotalEnergy,
		summary.Bins, summary.InfiniteBins)
	return err
}
