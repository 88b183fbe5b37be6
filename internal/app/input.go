package app

import (
	"bufio"
	"context"
	"io"
	"strconv"
)

type token struct {
	text string
	err  error
}

// tokenReader reads whitespace-separated tokens on its own goroutine so
// that Run can stop waiting for input when its context is cancelled.
type tokenReader struct {
	tokens chan token
	done   chan struct{}
}

func newTokenReader(r io.Reader) *tokenReader {
	tr := &tokenReader{
		tokens: make(chan token),
		done:   make(chan struct{}),
	}
	go tr.scan(r)
	return tr
}

func (tr *tokenReader) scan(r io.Reader) {
	defer close(tr.tokens)

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		select {
		case tr.tokens <- token{text: scanner.Text()}:
		case <-tr.done:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		select {
		case tr.tokens <- token{err: err}:
		case <-tr.done:
		}
	}
}

// next returns the next token, io.EOF at end of input, or ctx.Err().
func (tr *tokenReader) next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case tok, ok := <-tr.tokens:
		if !ok {
			return "", io.EOF
		}
		return tok.text, tok.err
	}
}

// nextInt returns the next token as an int.
// A token that is not an integer is consumed and reported as ErrInvalidInput.
func (tr *tokenReader) nextInt(ctx context.Context) (int, error) {
	text, err := tr.next(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, ErrInvalidInput
	}
	return n, nil
}

// stop tells the scanning goroutine to exit. It does not close the reader,
// so a goroutine blocked in Read (stdin after an interrupt, say) outlives Run
// until that Read returns.
func (tr *tokenReader) stop() {
	close(tr.done)
}
