package envseek

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// DotenvResolver reads values from a dotenv file using the full dotenv syntax:
// comments, blank lines, export prefixes, single and double quotes.
// Unlike FileResolver every line is scanned, so the key may appear anywhere in the file.
type DotenvResolver struct {
	// Fs is the filesystem the file is read from, the OS filesystem when nil
	Fs afero.Fs
	// Path of the file, DefaultEnvFile when empty
	Path string
}

// NewDotenvResolver creates a DotenvResolver reading path from the OS filesystem.
func NewDotenvResolver(path string) *DotenvResolver {
	return &DotenvResolver{Fs: afero.NewOsFs(), Path: path}
}

// Name returns the name of this source including the file path.
func (r *DotenvResolver) Name() string {
	return fmt.Sprintf("dotenv[%s]", r.path())
}

// Resolve parses the file and returns the value stored for key.
func (r *DotenvResolver) Resolve(key string) (string, error) {
	if key == "" {
		return "", newError(r.Name(), key, ErrEmptyKey, "", nil)
	}

	fsys := r.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	file, err := fsys.Open(r.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newError(r.Name(), key, ErrNotFound, "file does not exist", err)
		}
		return "", newError(r.Name(), key, ErrIO, "", err)
	}
	defer file.Close()

	values, err := godotenv.Parse(file)
	if err != nil {
		return "", newError(r.Name(), key, ErrIO, "parse", err)
	}

	val := values[key]
	if val == "" {
		return "", newError(r.Name(), key, ErrNotFound, "", nil)
	}
	return val, nil
}

func (r *DotenvResolver) path() string {
	if r.Path == "" {
		return DefaultEnvFile
	}
	return r.Path
}
