package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	cases := []struct {
		level  string
		format string
		want   zapcore.Level
	}{
		{level: "debug", format: "console", want: zapcore.DebugLevel},
		{level: "warn", format: "json", want: zapcore.WarnLevel},
		{level: "error", format: "json", want: zapcore.ErrorLevel},
		{level: "", format: "", want: zapcore.InfoLevel},
	}
	for _, tc := range cases {
		t.Run(tc.level+"/"+tc.format, func(t *testing.T) {
			l, err := NewLogger(tc.level, tc.format, "consig-origination")
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tc.want))
			if tc.want > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tc.want-1))
			}
		})
	}
}
