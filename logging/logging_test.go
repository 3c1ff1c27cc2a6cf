package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	l := NewDefaultLoggerTo(&out, &errOut)
	l.SetFlags(0)
	return l, &out, &errOut
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", DebugLevel, false},
		{"INFO", InfoLevel, false},
		{"", InfoLevel, false},
		{" warning ", WarnLevel, false},
		{"error", ErrorLevel, false},
		{"fatal", FatalLevel, false},
		{"verbose", InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv(LevelEnvVar, "debug")
	assert.Equal(t, DebugLevel, LevelFromEnv())

	t.Setenv(LevelEnvVar, "nonsense")
	assert.Equal(t, InfoLevel, LevelFromEnv())
}

func TestDefaultLoggerRoutesByLevel(t *testing.T) {
	l, out, errOut := newTestLogger()
	l.SetLevel(DebugLevel)

	l.Debug("stage started")
	l.Info("stage finished")
	l.Warn("spectrum longer than rao")
	l.Error(errors.New("boom"), "estimation failed")

	assert.Equal(t, "[DEBUG] stage started\n[INFO] stage finished\n", out.String())
	assert.Equal(t, "[WARN] spectrum longer than rao\n[ERROR] estimation failed: boom\n", errOut.String())
}

func TestDefaultLoggerFiltersBelowLevel(t *testing.T) {
	l, out, _ := newTestLogger()

	l.Debug("hidden")
	assert.Empty(t, out.String())

	l.SetLevel(ErrorLevel)
	l.Info("hidden too")
	assert.Empty(t, out.String())
}

func TestDefaultLoggerFieldsAreSorted(t *testing.T) {
	l, out, _ := newTestLogger()

	l.WithFields(Fields{"component": "estimator"}).Info("rao characterised", Fields{"bins": 8, "backend": "radix2"})

	assert.Equal(t, "[INFO] rao characterised backend=radix2 bins=8 component=estimator\n", out.String())
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	l, out, _ := newTestLogger()

	_ = l.WithFields(Fields{"component": "ingest"})
	l.Info("plain")

	assert.Equal(t, "[INFO] plain\n", out.String())
}

func TestWithContextUsesStoredFields(t *testing.T) {
	l, out, _ := newTestLogger()

	ctx := ContextWithFields(context.Background(), Fields{"run": 1})
	ctx = ContextWithFields(ctx, Fields{"record": "heave"})
	l.WithContext(ctx).Info("loaded")

	assert.Equal(t, "[INFO] loaded record=heave run=1\n", out.String())
}

func TestFatalExits(t *testing.T) {
	l, _, errOut := newTestLogger()
	var code int
	l.exit = func(c int) { code = c }

	l.Fatal(errors.New("no input"), "cannot continue")

	assert.Equal(t, 1, code)
	assert.Equal(t, "[FATAL] cannot continue: no input\n", errOut.String())
}

func TestColorsWrapWarnings(t *testing.T) {
	l, _, errOut := newTestLogger()
	l.useColors = true

	l.Warn("careful")

	assert.Equal(t, ColorYellow+"[WARN] careful"+ColorReset+"\n", errOut.String())
}

func TestGlobalLogger(t *testing.T) {
	previous := GetGlobalLogger()
	t.Cleanup(func() { SetGlobalLogger(previous) })

	SetGlobalLogger(nil)
	require.IsType(t, &NoOpLogger{}, GetGlobalLogger())

	l, out, _ := newTestLogger()
	SetGlobalLogger(l)
	Info("through global")
	assert.Equal(t, "[INFO] through global\n", out.String())

	assert.Same(t, l, OrGlobal(nil))
	other := &NoOpLogger{}
	assert.Same(t, other, OrGlobal(other))
}
