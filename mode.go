package envseek

import (
	"fmt"
	"strings"
)

// Mode selects which resolvers a Seeker consults.
// The zero value is ModeAll.
type Mode uint8

const (
	// ModeAll tries the file, then the environment, then the terminal.
	ModeAll Mode = iota
	// ModeFile reads the key-value file only.
	ModeFile
	// ModeSystem reads the process environment only.
	ModeSystem
	// ModeInput asks on the terminal only.
	ModeInput
)

var modeNames = [...]string{
	ModeAll:    "all",
	ModeFile:   "file",
	ModeSystem: "system",
	ModeInput:  "input",
}

// String returns the lower-case name of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	return int(m) < len(modeNames)
}

// ParseMode converts a mode name into a Mode. Matching is case-insensitive
// and an empty string yields ModeAll.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeAll, nil
	}
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return ModeAll, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
