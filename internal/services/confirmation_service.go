// internal/services/confirmation_service.go
package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Confirmer answers a yes/no question. A false answer, a cancelled context and an
// exhausted input all mean "no".
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool {
	return f(ctx, prompt)
}

// IsAffirmative reports whether answer is "y", ignoring case and surrounding whitespace.
func IsAffirmative(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

// ConsoleConfirmer prints the prompt and waits for one line of input. A line belongs to the
// prompt that is open when it arrives. Lines typed between prompts are kept for the next one,
// except an answer that arrives after its prompt timed out, which is dropped.
type ConsoleConfirmer struct {
	in  io.Reader
	out io.Writer

	start sync.Once

	mu        sync.Mutex
	pending   chan string
	queued    []string
	abandoned bool
	eof       bool
}

// NewConsoleConfirmer reads answers from in. The reader goroutine exits only when in
// reaches EOF or fails, so in should be closed once the confirmer is no longer used.
func NewConsoleConfirmer(in io.Reader, out io.Writer) *ConsoleConfirmer {
	return &ConsoleConfirmer{
		in:  in,
		out: out,
	}
}

func (c *ConsoleConfirmer) Confirm(ctx context.Context, prompt string) bool {
	fmt.Fprint(c.out, prompt)

	reply := make(chan string, 1)

	c.mu.Lock()
	if len(c.queued) > 0 {
		line := c.queued[0]
		c.queued = c.queued[1:]
		c.mu.Unlock()
		return IsAffirmative(line)
	}
	if c.eof {
		c.mu.Unlock()
		return false
	}
	c.pending = reply
	c.abandoned = false
	c.mu.Unlock()

	c.start.Do(func() { go c.readLines() })

	select {
	case <-ctx.Done():
		c.mu.Lock()
		if c.pending == reply {
			c.pending = nil
			c.abandoned = true
		}
		c.mu.Unlock()
		fmt.Fprintln(c.out)
		return false
	case line, ok := <-reply:
		return ok && IsAffirmative(line)
	}
}

func (c *ConsoleConfirmer) readLines() {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		c.deliver(scanner.Text())
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.eof = true
	if c.pending != nil {
		close(c.pending)
		c.pending = nil
	}
}

func (c *ConsoleConfirmer) deliver(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.pending != nil:
		c.pending <- line
		c.pending = nil
	case c.abandoned:
		// late answer to a prompt that already timed out
		c.abandoned = false
	default:
		c.queued = append(c.queued, line)
	}
}
