package envseek

// Resolver is a single source able to produce a value for a key.
type Resolver interface {
	// Resolve returns a non-empty value for key or an error
	// describing why the source could not provide one.
	Resolve(key string) (string, error)

	// Name returns a human-readable name of the source for logging purposes.
	Name() string
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc struct {
	SourceName string
	Fn         func(key string) (string, error)
}

// Resolve calls the wrapped function.
func (f ResolverFunc) Resolve(key string) (string, error) {
	return f.Fn(key)
}

// Name returns the source name.
func (f ResolverFunc) Name() string {
	if f.SourceName == "" {
		return "func"
	}
	return f.SourceName
}

// ErrorHandler defines how errors from resolvers should be handled.
// It returns whether resolution should continue with the next resolver
// and the error to report when it should not.
type ErrorHandler func(err error, sourceName string) (bool, error)

// ContinueOnError ignores the error and moves to the next resolver
func ContinueOnError(err error, sourceName string) (bool, error) {
	return true, nil
}

// BreakOnError stops resolution on the first error
func BreakOnError(err error, sourceName string) (bool, error) {
	return false, err
}

// Chain consults resolvers in order and returns the first value found.
type Chain struct {
	resolvers    []Resolver
	errorHandler ErrorHandler
	logger       Logger
}

// NewChain creates a Chain over the given resolvers.
// Resolvers are queried in the order they are provided.
// By default, uses ContinueOnError as the error handler.
func NewChain(resolvers ...Resolver) *Chain {
	return &Chain{
		resolvers:    resolvers,
		errorHandler: ContinueOnError,
		logger:       NoopLogger{},
	}
}

// WithErrorHandler sets a custom error handler and returns the chain for chaining.
func (c *Chain) WithErrorHandler(handler ErrorHandler) *Chain {
	c.errorHandler = handler
	return c
}

// WithLogger sets the logger used to report skipped resolvers.
func (c *Chain) WithLogger(logger Logger) *Chain {
	if logger == nil {
		logger = NoopLogger{}
	}
	c.logger = logger
	return c
}

// Add appends a resolver with the lowest priority.
func (c *Chain) Add(r Resolver) {
	c.resolvers = append(c.resolvers, r)
}

// Name returns the names of the chained resolvers.
func (c *Chain) Name() string {
	name := "chain["
	for i, r := range c.resolvers {
		if i > 0 {
			name += ","
		}
		name += r.Name()
	}
	return name + "]"
}

// Resolve walks the resolvers until one of them returns a value.
// When every resolver fails the error of the last one is returned.
func (c *Chain) Resolve(key string) (string, error) {
	lastErr := error(newError(c.Name(), key, ErrNotFound, "no resolvers", nil))
	for _, r := range c.resolvers {
		val, err := r.Resolve(key)
		if err == nil {
			c.logger.Info("value resolved", "key", key, "source", r.Name())
			return val, nil
		}
		lastErr = err

		if c.errorHandler == nil {
			return "", err
		}
		proceed, handlerErr := c.errorHandler(err, r.Name())
		if !proceed {
			return "", handlerErr
		}
		c.logger.Info("resolver skipped", "key", key, "source", r.Name(), "reason", err.Error())
	}
	return "", lastErr
}
