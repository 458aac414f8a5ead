package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportChildFailureEnabled(t *testing.T) {
	tests := []struct {
		value   string
		enabled bool
	}{
		{"", false},
		{"0", false},
		{"0.3", false},
		{"0.5", false},
		{"0.50001", true},
		{"1", true},
		{"-5", false},
		{"not-a-number", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv(ReportFailureEnv, tt.value)
			assert.Equal(t, tt.enabled, reportChildFailureEnabled())
		})
	}
}
