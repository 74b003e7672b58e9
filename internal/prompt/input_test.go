package prompt

import (
	"io"
	"testing"

	"github.com/peterh/liner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubPrompter returns a canned answer or error.
type stubPrompter struct {
	answer string
	err    error
}

func (s *stubPrompter) Prompt(_ string) (string, error) {
	return s.answer, s.err
}

func (*stubPrompter) Close() error { return nil }

func TestConfirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{name: "yes", answer: "yes", want: true},
		{name: "y", answer: "y", want: true},
		{name: "uppercase Y", answer: "Y", want: true},
		{name: "padded yes", answer: "  yes  ", want: true},
		{name: "no", answer: "no", want: false},
		{name: "empty defaults to no", answer: "", want: false},
		{name: "garbage defaults to no", answer: "sure why not", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Confirm(&stubPrompter{answer: tt.answer}, "Overwrite?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmAbortedIsNo(t *testing.T) {
	t.Parallel()

	got, err := Confirm(&stubPrompter{err: liner.ErrPromptAborted}, "Overwrite?")
	require.NoError(t, err)
	assert.False(t, got)

	got, err = Confirm(&stubPrompter{err: io.EOF}, "Overwrite?")
	require.NoError(t, err)
	assert.False(t, got)
}
