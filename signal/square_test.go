package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestSquareWaveCycles(t *testing.T) {
	samples, time, err := SquareWave(1000, 1, 10, 0.5)
	require.NoError(t, err)
	require.Len(t, samples, 1000)
	require.Len(t, time, 1000)

	for cycle := 0; cycle < 10; cycle++ {
		for index := 0; index < 100; index++ {
			want := 0.
			if index < 50 {
				want = 1.
			}
			if samples[cycle*100+index] != want {
				t.Fatalf("sample %v of cycle %v is %v, want %v", index, cycle, samples[cycle*100+index], want)
			}
		}
	}
	assert.Equal(t, 500., floats.Sum(samples))
}

func TestSquareWaveTimeBaseIsHalfOpen(t *testing.T) {
	_, time, err := SquareWave(100, 0.5, 1, 0.5)
	require.NoError(t, err)
	require.Len(t, time, 50)
	assert.Equal(t, 0., time[0])
	assert.InDelta(t, 0.49, time[49], 1e-12)
	assert.Less(t, time[49], 0.5)
}

func TestSquareWaveExtremeDuty(t *testing.T) {
	for _, duty := range []float64{0, 1, -0.5, 1.5} {
		samples, _, err := SquareWave(500, 0.2, 7, duty)
		require.NoError(t, err)
		want := 0.
		if duty >= 1 {
			want = 1.
		}
		for _, v := range samples {
			if v != want {
				t.Fatalf("duty %v produced %v, want constant %v", duty, v, want)
			}
		}
	}
}

func TestSquareWaveRange(t *testing.T) {
	samples, _, err := SquareWave(44100, 0.25, 440, 0.3)
	require.NoError(t, err)
	assert.Len(t, samples, 11025)
	for _, v := range samples {
		if v != 0 && v != 1 {
			t.Fatalf("value %v outside {0, 1}", v)
		}
	}
}

func TestSquareWaveInvalidCounts(t *testing.T) {
	_, _, err := SquareWave(1000, 0.0005, 10, 0.5)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = SquareWave(1000, -1, 10, 0.5)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, _, err = SquareWave(0, 1, 10, 0.5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSampleCountRounding(t *testing.T) {
	frequency := 10.
	duration := (1 / frequency) * 3
	require.NotEqual(t, 0.3, duration)

	n, err := SampleCount(10000, duration)
	require.NoError(t, err)
	assert.Equal(t, 3000, n)

	n, err = SampleCount(10000, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestVariableSquareWaveClampsDuty(t *testing.T) {
	samples := VariableSquareWave(4, 1, []float64{-1, 2, 1.5, -0.1})
	assert.Equal(t, []float64{0, 1, 1, 0}, samples)
}

func TestVariableSquareWave(t *testing.T) {
	duty := []float64{1, 1, 0, 0, 0.5, 0.5, 0.5, 0.5}
	// one cycle every 4 samples
	samples := VariableSquareWave(8, 2, duty)
	assert.Equal(t, []float64{1, 1, 0, 0, 1, 1, 0, 0}, samples)
}

func TestTimeBase(t *testing.T) {
	assert.Empty(t, TimeBase(0, 1))
	assert.Equal(t, []float64{0}, TimeBase(1, 1))
	assert.Equal(t, []float64{0, 0.5, 1}, TimeBase(3, 1))
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, HalfOpenTimeBase(4, 1))
}

func TestRoundDecimals(t *testing.T) {
	assert.Equal(t, 0.3, RoundDecimals(0.30000000000000004, 10))
	assert.Equal(t, 1.25, RoundDecimals(1.25, 10))
}
