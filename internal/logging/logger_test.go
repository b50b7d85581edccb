package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFromContext(t *testing.T) {
	t.Parallel()
	nop := zap.NewNop().Sugar()
	ctx := WithLogger(context.Background(), nop)
	assert.Same(t, nop, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestLevelFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		level    string
		expected zapcore.Level
	}{
		{name: "debug", level: "DEBUG", expected: zapcore.DebugLevel},
		{name: "warn", level: "warning", expected: zapcore.WarnLevel},
		{name: "error", level: " error ", expected: zapcore.ErrorLevel},
		{name: "unknown", level: "chatty", expected: zapcore.InfoLevel},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, levelFor(test.level))
		})
	}
}
