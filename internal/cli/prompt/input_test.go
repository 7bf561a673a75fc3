package prompt

import (
	"errors"
	"testing"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{input: "2s", want: 2 * time.Second},
		{input: "500ms", want: 500 * time.Millisecond},
		{input: "2", want: 2 * time.Second},
		{input: " 0.25 ", want: 250 * time.Millisecond},
		{input: "0", want: 0},
		{input: "-1", wantErr: true},
		{input: "-1s", wantErr: true},
		{input: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDuration(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateInt(t *testing.T) {
	port := validateInt(1, 65535)
	assert.NoError(t, port("8000"))
	assert.Error(t, port("0"))
	assert.Error(t, port("70000"))
	assert.Error(t, port("http"))

	attempts := validateInt(1, 0)
	assert.NoError(t, attempts("1000000"))
	assert.Error(t, attempts("0"))
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, wrapError(nil))
	assert.ErrorIs(t, wrapError(promptui.ErrInterrupt), ErrAborted)
	assert.ErrorIs(t, wrapError(promptui.ErrAbort), ErrAborted)

	other := errors.New("tty closed")
	assert.Equal(t, other, wrapError(other))
	assert.True(t, IsAborted(ErrAborted))
	assert.False(t, IsAborted(other))
}
