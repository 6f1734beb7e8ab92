package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNopBeforeInit(t *testing.T) {
	assert.NotNil(t, L())
	assert.NotNil(t, S())
	S().Infow("dropped", "k", "v")
}

func TestReplace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core))
	t.Cleanup(func() { Replace(zap.NewNop()) })

	S().Infow("submitted", "seq", 3)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "submitted", entries[0].Message)
		assert.EqualValues(t, 3, entries[0].ContextMap()["seq"])
	}
}
