package report

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/sonido-swell/estimation"
)

func ramp(n int) []float32 {
	values := make([]float32, n)
	for i := range values {
		values[i] = float32(i)
	}
	return values
}

func TestPrintShortSpectrum(t *testing.T) {
	var out bytes.Buffer
	s := estimation.NewSpectrum(ramp(8), 0.1)

	require.NoError(t, NewPrinter(&out, DefaultLines).Print(s))

	want := Header + "\n" +
		"0.000000 Hz, 0.000000\n" +
		"1.250000 Hz, 1.000000\n" +
		"2.500000 Hz, 2.000000\n" +
		"3.750000 Hz, 3.000000\n" +
		"5.000000 Hz, 4.000000\n"
	assert.Equal(t, want, out.String())
}

func TestPrintSamplesLongSpectrum(t *testing.T) {
	var out bytes.Buffer
	s := estimation.NewSpectrum(ramp(64), 1)

	require.NoError(t, NewPrinter(&out, DefaultLines).Print(s))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, Header, lines[0])
	for j, line := range lines[1:] {
		bin := 4 * j
		assert.Equal(t, fmt.Sprintf("%f Hz, %f", float64(bin)/64, float64(bin)), line)
	}
}

func TestPrintInfiniteBins(t *testing.T) {
	var out bytes.Buffer
	inf := float32(math.Inf(1))
	s := estimation.NewSpectrum([]float32{inf, 2}, 0.5)

	require.NoError(t, NewPrinter(&out, 0).Print(s))
	assert.Contains(t, out.String(), "0.000000 Hz, +Inf\n")
	assert.Contains(t, out.String(), "1.000000 Hz, 2.000000\n")
}

func TestPrintEmptySpectrum(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewPrinter(&out, 5).Print(estimation.NewSpectrum(nil, 1)))
	assert.Equal(t, Header+"\n", out.String())
}

func TestInterval(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, 9)

	assert.Equal(t, 1, p.Interval(4))
	assert.Equal(t, 1, p.Interval(9))
	assert.Equal(t, 1, p.Interval(10))
	assert.Equal(t, 4, p.Interval(32))
	assert.Equal(t, 128, p.Interval(1024))
}

func TestSummarise(t *testing.T) {
	inf := float32(math.Inf(1))
	// Bins above Nyquist (index 4) are ignored.
	s := estimation.NewSpectrum([]float32{1, 6, inf, 3, 2, 100, 100, 100}, 0.1)

	summary, err := Summarise(s)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Bins)
	assert.Equal(t, 1, summary.InfiniteBins)
	assert.Equal(t, 1, summary.PeakBin)
	assert.InDelta(t, 1.25, summary.PeakFrequency, 1e-6)
	assert.Equal(t, 6.0, summary.PeakDensity)
	assert.Equal(t, 12.0, summary.TotalEnergy)
	assert.Equal(t, 3.0, summary.MeanDensity)

	var out bytes.Buffer
	require.NoError(t, PrintSummary(&out, summary))
	assert.Equal(t, "Peak: 1.250000 Hz, 6.000000 (total energy 12.000000 over 5 bins, 1 unbounded)\n", out.String())
}

func TestSummariseAllInfinite(t *testing.T) {
	inf := float32(math.Inf(1))
	_, err := Summarise(estimation.NewSpectrum([]float32{inf, inf}, 1))
	assert.ErrorIs(t, err, ErrNoFiniteBins)
}
