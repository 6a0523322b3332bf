package envseek

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultPrompt is written before reading a value from the terminal.
const DefaultPrompt = "Please enter an environment variable"

// InteractiveResolver asks for a value on an output stream
// and reads a single line from an input stream.
// It blocks until a line is available or the input is closed.
type InteractiveResolver struct {
	In     io.Reader
	Out    io.Writer
	Prompt string
}

// Name returns the source name.
func (r *InteractiveResolver) Name() string {
	return "input"
}

// Resolve prompts and returns the trimmed line. The key is not used.
func (r *InteractiveResolver) Resolve(key string) (string, error) {
	in, out := r.In, r.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	prompt := r.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	if _, err := fmt.Fprintln(out, prompt); err != nil {
		return "", newError(r.Name(), key, ErrIO, "write prompt", err)
	}

	line, err := readLine(in)
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", newError(r.Name(), key, ErrIO, "read line", err)
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return "", newError(r.Name(), key, ErrNotFound, "empty input", nil)
	}
	return line, nil
}

// readLine reads up to and including the next '\n' without consuming
// anything past it, so the remaining input stays available to later reads.
func readLine(r io.Reader) (string, error) {
	if br, ok := r.(io.ByteReader); ok {
		return readLineFrom(br)
	}
	return readLineFrom(byteReader{r})
}

func readLineFrom(br io.ByteReader) (string, error) {
	var sb strings.Builder
	for {
		c, err := br.ReadByte()
		if err != nil {
			return sb.String(), err
		}
		sb.WriteByte(c)
		if c == '\n' {
			return sb.String(), nil
		}
	}
}

type byteReader struct {
	r io.Reader
}

func (b byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	for {
		n, err := b.r.Read(buf[:])
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}
