// Package input contains readers used to get a chunk of Lua source from
// the CLI, whether from a pipe/file or interactively from a terminal.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// ChunkReader reads successive chunks of Lua source to submit to the
// recognizer. Implementations must have Close called on them exactly
// once before disposal.
type ChunkReader interface {
	ReadChunk() (string, error)
	AllowBlank(allow bool)
	Close() error
}

// DirectCommandReader implements ChunkReader and reads chunks from any
// generic input stream directly, one line at a time. It can be used
// generically with any io.Reader but does not sanitize the input of
// control and escape sequences.
//
// DirectCommandReader should not be used directly; instead, create one
// with [NewDirectReader].
type DirectCommandReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveCommandReader implements ChunkReader and reads chunks from
// stdin using a Go implementation of the GNU Readline library. This keeps
// input clear of all typing and editing escape sequences and enables the
// use of input history. This should in general only be used when directly
// connecting to a TTY for input.
//
// InteractiveCommandReader should not be used directly; instead, create
// one with [NewInteractiveReader].
type InteractiveCommandReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader creates a new DirectCommandReader and initializes a
// buffered reader on the provided reader. The returned reader must have
// Close() called on it before disposal.
func NewDirectReader(r io.Reader) *DirectCommandReader {
	return &DirectCommandReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates a new InteractiveCommandReader and
// initializes readline. The returned reader must have Close() called on
// it before disposal to properly teardown readline resources.
func NewInteractiveReader() (*InteractiveCommandReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "> ",
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveCommandReader{
		rl:     rl,
		prompt: "> ",
	}, nil
}

// Close cleans up resources associated with the DirectCommandReader. For
// now it does nothing, as DirectCommandReader does not create resources,
// but callers should treat it as though it must have Close called on it.
func (dcr *DirectCommandReader) Close() error {
	return nil
}

// Close cleans up readline resources associated with the
// InteractiveCommandReader.
func (icr *InteractiveCommandReader) Close() error {
	return icr.rl.Close()
}

// ReadChunk reads the next line of input, treated as one chunk to submit
// to the recognizer. The returned string will only be empty if there is
// an error reading input; otherwise this function blocks until a line
// containing non-space characters is read.
//
// If at end of input, the returned string will be empty and error will
// be io.EOF. If any other error occurs, the returned string will be
// empty and error will be that error.
func (dcr *DirectCommandReader) ReadChunk() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dcr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && dcr.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// ReadChunk reads the next line of input from stdin, treated as one
// chunk to submit to the recognizer. The returned string will only be
// empty if there is an error; otherwise this function blocks until a
// line consisting of more than empty or whitespace-only input is read.
//
// If at end of input, the returned string will be empty and error will
// be io.EOF. If any other error occurs, the returned string will be
// empty and error will be that error.
func (icr *InteractiveCommandReader) ReadChunk() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = icr.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && icr.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// AllowBlank sets whether blank input is allowed. By default it is not.
func (dcr *DirectCommandReader) AllowBlank(allow bool) {
	dcr.blanksAllowed = allow
}

// AllowBlank sets whether blank input is allowed. By default it is not.
func (icr *InteractiveCommandReader) AllowBlank(allow bool) {
	icr.blanksAllowed = allow
}

// SetPrompt updates the prompt to the given text.
func (icr *InteractiveCommandReader) SetPrompt(p string) {
	icr.rl.SetPrompt(p)
}

// GetPrompt gets the current prompt.
func (icr *InteractiveCommandReader) GetPrompt() string {
	return icr.prompt
}
