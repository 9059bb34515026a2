package services

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsAffirmative(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", true},
		{"  y \n", true},
		{"yes", false},
		{"n", false},
		{"", false},
		{"д", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAffirmative(tt.answer), "answer %q", tt.answer)
	}
}

func TestConsoleConfirmer(t *testing.T) {
	var out strings.Builder
	c := NewConsoleConfirmer(strings.NewReader("Y\nno\n"), &out)

	assert.True(t, c.Confirm(context.Background(), "first? "))
	assert.False(t, c.Confirm(context.Background(), "second? "))
	// input exhausted
	assert.False(t, c.Confirm(context.Background(), "third? "))
	assert.Equal(t, "first? second? third? ", out.String())
}

func TestConsoleConfirmer_ContextDeadline(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	c := NewConsoleConfirmer(r, io.Discard)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.False(t, c.Confirm(ctx, "waiting? "))
}

func TestConsoleConfirmer_LateAnswerIsDropped(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c := NewConsoleConfirmer(r, io.Discard)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.False(t, c.Confirm(ctx, "first? "))

	_, err := io.WriteString(w, "y\n")
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return !c.abandoned
	}, time.Second, 5*time.Millisecond)

	ctx2, cancel2 := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel2()
	assert.False(t, c.Confirm(ctx2, "second? "), "late answer must not confirm the next prompt")

	// a fresh answer still reaches the prompt that is waiting for it
	answer := make(chan bool, 1)
	go func() { answer <- c.Confirm(context.Background(), "third? ") }()
	require.Eventually(t, func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.pending != nil
	}, time.Second, 5*time.Millisecond)

	_, err = io.WriteString(w, "y\n")
	require.NoError(t, err)
	assert.True(t, <-answer)
}

func TestConsoleConfirmer_TypedAheadAnswer(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c := NewConsoleConfirmer(r, io.Discard)

	go io.WriteString(w, "y\nn\n")
	assert.True(t, c.Confirm(context.Background(), "first? "))
	assert.False(t, c.Confirm(context.Background(), "second? "))
}

func TestConfirmFunc(t *testing.T) {
	var got string
	f := ConfirmFunc(func(_ context.Context, prompt string) bool {
		got = prompt
		return true
	})

	assert.True(t, f.Confirm(context.Background(), "ok?"))
	assert.Equal(t, "ok?", got)
}
