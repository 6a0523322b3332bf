package envseek

// DefaultSeeker is the Seeker used by the package functions.
var DefaultSeeker = NewSeeker()

// Seek resolves key according to mode using the DefaultSeeker.
func Seek(mode Mode, key string) (string, error) {
	return DefaultSeeker.Seek(mode, key)
}

// File resolves key from .env in the working directory.
func File(key string) (string, error) {
	return DefaultSeeker.File(key)
}

// System resolves key from the process environment.
func System(key string) (string, error) {
	return DefaultSeeker.System(key)
}

// Input asks for a value on standard output and reads it from standard input.
func Input() (string, error) {
	return DefaultSeeker.Input()
}

// MustSeek is like Seek but panics if the value cannot be resolved.
// It simplifies initialization of package-level settings.
func MustSeek(mode Mode, key string) string {
	val, err := Seek(mode, key)
	if err != nil {
		panic("envseek: " + err.Error())
	}
	return val
}
