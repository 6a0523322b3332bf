package envseek

import (
	"fmt"

	"github.com/spf13/afero"
)

// Seeker dispatches a lookup to the resolvers selected by a Mode.
// It holds no state besides its resolvers and is safe to reuse.
type Seeker struct {
	file   Resolver
	system Resolver
	input  Resolver
	logger Logger
}

// Option configures a Seeker.
type Option func(*Seeker)

// WithFile replaces the resolver consulted for ModeFile.
func WithFile(r Resolver) Option {
	return func(s *Seeker) {
		if r != nil {
			s.file = r
		}
	}
}

// WithSystem replaces the resolver consulted for ModeSystem.
func WithSystem(r Resolver) Option {
	return func(s *Seeker) {
		if r != nil {
			s.system = r
		}
	}
}

// WithInput replaces the resolver consulted for ModeInput.
func WithInput(r Resolver) Option {
	return func(s *Seeker) {
		if r != nil {
			s.input = r
		}
	}
}

// WithEnvFile reads the key-value file from fsys at path.
// A nil fsys means the OS filesystem.
func WithEnvFile(fsys afero.Fs, path string) Option {
	return func(s *Seeker) {
		if fsys == nil {
			fsys = afero.NewOsFs()
		}
		s.file = &FileResolver{Fs: fsys, Path: path}
	}
}

// WithLogger sets the logger reporting which source answered.
// Values themselves are never logged.
func WithLogger(logger Logger) Option {
	return func(s *Seeker) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSeeker builds a Seeker reading .env from the working directory,
// the process environment and the standard streams unless overridden.
func NewSeeker(opts ...Option) *Seeker {
	s := &Seeker{
		file:   NewFileResolver(DefaultEnvFile),
		system: SystemResolver{},
		input:  &InteractiveResolver{},
		logger: NoopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Seek resolves key according to mode.
//
// ModeFile and ModeSystem return the resolver error unchanged.
// ModeAll tries the file, the environment and finally the terminal;
// failures of the first two are not reported, only the terminal error can surface.
// The key is not used by ModeInput.
func (s *Seeker) Seek(mode Mode, key string) (string, error) {
	switch mode {
	case ModeFile:
		return s.single(s.file, key)
	case ModeSystem:
		return s.single(s.system, key)
	case ModeInput:
		return s.single(s.input, key)
	case ModeAll:
		return NewChain(s.file, s.system, s.input).WithLogger(s.logger).Resolve(key)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// File resolves key from the key-value file only.
func (s *Seeker) File(key string) (string, error) {
	return s.Seek(ModeFile, key)
}

// System resolves key from the environment only.
func (s *Seeker) System(key string) (string, error) {
	return s.Seek(ModeSystem, key)
}

// Input asks for a value on the terminal.
func (s *Seeker) Input() (string, error) {
	return s.Seek(ModeInput, "")
}

// Resolve makes a Seeker usable as a Resolver, consulting every source.
func (s *Seeker) Resolve(key string) (string, error) {
	return s.Seek(ModeAll, key)
}

// Name returns the source name.
func (s *Seeker) Name() string {
	return "seeker"
}

func (s *Seeker) single(r Resolver, key string) (string, error) {
	val, err := r.Resolve(key)
	if err != nil {
		s.logger.Error("resolution failed", "key", key, "source", r.Name(), "error", err)
		return "", err
	}
	s.logger.Info("value resolved", "key", key, "source", r.Name())
	return val, nil
}
