package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/peerseek/internal/core/domain"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level domain.LogLevel
		want  string
	}{
		{domain.LogLevelDebug, "DEBUG"},
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevel(3), "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}
