package envseek_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmie/x/envseek"
)

func TestPackageSystem(t *testing.T) {
	t.Setenv("ENVSEEK_DEFAULT_TOKEN", "abc123")

	got, err := envseek.System("ENVSEEK_DEFAULT_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)

	got, err = envseek.Seek(envseek.ModeSystem, "ENVSEEK_DEFAULT_TOKEN")
	require.NoError(t, err)
	assert.Equal(t, "abc123", got)
}

func TestMustSeek(t *testing.T) {
	t.Setenv("ENVSEEK_DEFAULT_TOKEN", "abc123")

	assert.Equal(t, "abc123", envseek.MustSeek(envseek.ModeSystem, "ENVSEEK_DEFAULT_TOKEN"))
	assert.Panics(t, func() {
		envseek.MustSeek(envseek.ModeSystem, "ENVSEEK_DEFAULT_UNSET")
	})
}

func TestPackageFileMissing(t *testing.T) {
	// tests run in the package directory, which has no .env
	_, err := envseek.File("ENVSEEK_DEFAULT_TOKEN")
	assert.ErrorIs(t, err, envseek.ErrNotFound)
}
