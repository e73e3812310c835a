package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

type scanResult struct {
	line string
	err  error
}

// Prompt reads player input line by line. Scanning happens on its own
// goroutine so a blocked read can be abandoned when ctx is canceled.
type Prompt struct {
	in    io.Reader
	once  sync.Once
	lines chan scanResult
}

func NewPrompt(in io.Reader) *Prompt {
	return &Prompt{in: in, lines: make(chan scanResult)}
}

// ReadLine returns the next input line. End of input and read errors are
// reported as ErrInputReadFailed; the session cannot continue after them.
func (p *Prompt) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.once.Do(func() { go p.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			return "", fmt.Errorf("%w: %w", ErrInputReadFailed, io.EOF)
		}
		if res.err != nil {
			return "", fmt.Errorf("%w: %w", ErrInputReadFailed, res.err)
		}
		return res.line, nil
	}
}

func (p *Prompt) scan() {
	defer close(p.lines)
	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		p.lines <- scanResult{line: scanner.Text()}
	}
	err := scanner.Err()
	if err == nil {
		err = io.EOF
	}
	p.lines <- scanResult{err: err}
}
