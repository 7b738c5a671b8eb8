package log

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type named string

func (n named) String() string { return "name:" + string(n) }

func newObserved(level Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(core), level), logs
}

func TestParseLevel(t *testing.T) {

	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"":        LevelInfo,
		"warn":    LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
	}

	for name, want := range tests {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)

}

func TestLevels(t *testing.T) {

	logger, logs := newObserved(LevelWarn)
	assert.Equal(t, LevelWarn, logger.GetLevel())

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Error("kept")
	assert.Equal(t, 2, logs.FilterMessage("kept").Len())
	assert.Equal(t, 0, logs.FilterMessage("dropped").Len())

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.GetLevel())
	logger.Debug("now kept")
	assert.Equal(t, 1, logs.FilterMessage("now kept").Len())

	// Loggers derived with With share the level of their parent.
	child := logger.With(String("component", "rig"))
	logger.SetLevel(LevelError)
	child.Warn("dropped")
	assert.Equal(t, 0, logs.FilterMessage("dropped").Len())
	assert.Equal(t, LevelError, child.GetLevel())

}

func TestFields(t *testing.T) {

	logger, logs := newObserved(LevelDebug)

	logger.With(String("component", "rig")).Info("fields",
		Bool("ok", true),
		Float32("angle", 1.5),
		Int("steps", 3),
		Stringer("who", named("arm")),
		Uint64("fingerprint", 42),
		Error(errors.New("boom")),
		Field{Key: "extra", Value: 2.5},
	)

	entries := logs.FilterMessage("fields").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "rig", fields["component"])
	assert.Equal(t, true, fields["ok"])
	assert.Equal(t, float32(1.5), fields["angle"])
	assert.Equal(t, int64(3), fields["steps"])
	assert.Equal(t, "name:arm", fields["who"])
	assert.Equal(t, uint64(42), fields["fingerprint"])
	assert.Equal(t, "boom", fields["error"])
	// Fields without a type fall back to reflection.
	assert.Equal(t, 2.5, fields["extra"])

}

func TestNop(t *testing.T) {
	logger := NewNop()
	assert.NotPanics(t, func() {
		logger.Info("nothing", Int("n", 1))
		logger.With(Bool("b", false)).Error("nothing")
	})
	assert.Equal(t, LevelInfo, logger.GetLevel())
}
