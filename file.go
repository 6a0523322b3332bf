package envseek

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// DefaultEnvFile is the name of the key-value file looked up in the working directory.
const DefaultEnvFile = ".env"

// FileResolver reads values from a KEY=VALUE file.
//
// The file is read from the first line on and the lookup stops with ErrNotFound
// at the first line that is malformed, names another key or carries an empty value.
// Only a file whose lines all match the requested key resolves; the last of them wins.
// Lines are not length limited and lines that are not valid UTF-8 are skipped.
// DotenvResolver offers a full scan for files holding several keys.
type FileResolver struct {
	// Fs is the filesystem the file is read from, the OS filesystem when nil
	Fs afero.Fs
	// Path of the file, DefaultEnvFile when empty
	Path string
}

// NewFileResolver creates a FileResolver reading path from the OS filesystem.
func NewFileResolver(path string) *FileResolver {
	return &FileResolver{Fs: afero.NewOsFs(), Path: path}
}

// Name returns the name of this source including the file path.
func (r *FileResolver) Name() string {
	return fmt.Sprintf("file[%s]", r.path())
}

// Resolve opens the file and returns the value stored for key.
func (r *FileResolver) Resolve(key string) (string, error) {
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

	var token string
	reader := bufio.NewReader(file)
	lineNum := 0

	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return "", newError(r.Name(), key, ErrIO, "", readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		lineNum++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

		// lines that are not valid text are skipped
		if utf8.ValidString(line) {
			name, value, ok := strings.Cut(line, "=")
			if !ok || name != key || value == "" {
				return "", newError(r.Name(), key, ErrNotFound, fmt.Sprintf("line %d does not hold the key", lineNum), nil)
			}
			token = value
		}

		if readErr != nil {
			break
		}
	}

	if token == "" {
		return "", newError(r.Name(), key, ErrNotFound, "file holds no value", nil)
	}

	return unquote(token), nil
}

func (r *FileResolver) path() string {
	if r.Path == "" {
		return DefaultEnvFile
	}
	return r.Path
}

// unquote strips exactly one pair of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}
