package envseek

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotenvResolver(t *testing.T) {
	content := `
# credentials
OTHER=1
export API_TOKEN="abc 123"
SINGLE='quoted'
EMPTY=
`
	r := &DotenvResolver{Fs: memFile(t, content)}
	assert.Equal(t, "dotenv[.env]", r.Name())

	got, err := r.Resolve("API_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "abc 123", got)

	got, err = r.Resolve("SINGLE")
	require.NoError(t, err)
	assert.Equal(t, "quoted", got)

	_, err = r.Resolve("EMPTY")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Resolve("MISSING")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Resolve("")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestDotenvResolverMissingFile(t *testing.T) {
	r := &DotenvResolver{Fs: afero.NewMemMapFs(), Path: "prod.env"}

	_, err := r.Resolve("API_TOKEN")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "dotenv[prod.env]", r.Name())
}

func TestDotenvResolverFindsKeyThatFileResolverRejects(t *testing.T) {
	fsys := memFile(t, "OTHER=1\nTOKEN=abc\n")

	_, err := (&FileResolver{Fs: fsys}).Resolve("TOKEN")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := (&DotenvResolver{Fs: fsys}).Resolve("TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}
