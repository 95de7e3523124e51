package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectOutputMode(t *testing.T) {
	noEnv := func(string) (string, bool) { return "", false }
	env := func(vars map[string]string) func(string) (string, bool) {
		return func(k string) (string, bool) {
			v, ok := vars[k]
			return v, ok
		}
	}

	tests := []struct {
		name       string
		forceColor bool
		noColor    bool
		plain      bool
		stdoutTTY  bool
		stdinTTY   bool
		lookupEnv  func(string) (string, bool)
		want       OutputMode
	}{
		{name: "full terminal", stdoutTTY: true, stdinTTY: true, lookupEnv: noEnv, want: OutputModeInteractive},
		{name: "piped stdout", stdinTTY: true, lookupEnv: noEnv, want: OutputModePlain},
		{name: "piped stdin", stdoutTTY: true, lookupEnv: noEnv, want: OutputModeStyled},
		{name: "force color when piped", forceColor: true, lookupEnv: noEnv, want: OutputModeStyled},
		{name: "plain flag", plain: true, stdoutTTY: true, stdinTTY: true, lookupEnv: noEnv, want: OutputModePlain},
		{name: "no-color flag", noColor: true, stdoutTTY: true, stdinTTY: true, lookupEnv: noEnv, want: OutputModePlain},
		{
			name: "NO_COLOR env", stdoutTTY: true, stdinTTY: true,
			lookupEnv: env(map[string]string{"NO_COLOR": ""}), want: OutputModePlain,
		},
		{
			name: "dumb terminal", stdoutTTY: true, stdinTTY: true,
			lookupEnv: env(map[string]string{"TERM": "dumb"}), want: OutputModePlain,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detectOutputMode(tt.forceColor, tt.noColor, tt.plain, tt.stdoutTTY, tt.stdinTTY, tt.lookupEnv)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.String())
		})
	}
}
