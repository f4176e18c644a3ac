package earley

import "log"

// Option configures a Parse call, the same functional-options shape
// participle uses for its own builder (`participle.MustBuild[T](participle.Unquote(...))`).
type Option func(*config)

type config struct {
	startSymbol string
	debug       bool
	logger      *log.Logger
}

// WithStartSymbol overrides the default start symbol "S".
func WithStartSymbol(sym string) Option {
	return func(c *config) { c.startSymbol = sym }
}

// WithDebug toggles trace output during the predictor/scanner/completer
// loop; off by default, in which case Parse has no observable side
// effects beyond its return value. Pair with WithLogger, or traces fall
// back to log.Default().
func WithDebug(debug bool) Option {
	return func(c *config) { c.debug = debug }
}

// WithLogger supplies the *log.Logger debug traces are written to.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) *config {
	c := &config{startSymbol: "S", logger: log.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
