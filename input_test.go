package envseek_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmie/x/envseek"
)

func TestInteractiveResolver(t *testing.T) {
	out := new(bytes.Buffer)
	r := &envseek.InteractiveResolver{In: strings.NewReader("  hello \n"), Out: out}

	got, err := r.Resolve("ignored")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
	assert.Equal(t, envseek.DefaultPrompt+"\n", out.String())
}

func TestInteractiveResolverReadsOneLine(t *testing.T) {
	// a reader without ReadByte must not lose the second line
	in := iotest.OneByteReader(strings.NewReader("first\nsecond\n"))
	r := &envseek.InteractiveResolver{In: in, Out: io.Discard, Prompt: "token?"}

	first, err := r.Resolve("")
	require.NoError(t, err)
	second, err := r.Resolve("")
	require.NoError(t, err)

	assert.Equal(t, "first", first)
	assert.Equal(t, "second", second)
}

func TestInteractiveResolverErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      io.Reader
		want    string
		wantErr error
	}{
		{name: "last line without newline", in: strings.NewReader("tail"), want: "tail"},
		{name: "closed stream", in: strings.NewReader(""), wantErr: envseek.ErrIO},
		{name: "broken stream", in: iotest.ErrReader(errors.New("bad fd")), wantErr: envseek.ErrIO},
		{name: "blank line", in: strings.NewReader(" \t\n"), wantErr: envseek.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &envseek.InteractiveResolver{In: tt.in, Out: io.Discard}
			got, err := r.Resolve("")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInteractiveResolverPromptWriteFailure(t *testing.T) {
	r := &envseek.InteractiveResolver{In: strings.NewReader("x\n"), Out: failingWriter{}}

	_, err := r.Resolve("")
	assert.ErrorIs(t, err, envseek.ErrIO)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}
