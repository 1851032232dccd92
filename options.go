package skipnav

const (
	// DefaultMaxHeight is the number of levels used when WithMaxHeight is not
	// given.
	DefaultMaxHeight = 3
	// MaxLevel bounds any configured height.
	MaxLevel = 32

	defaultInitialCapacity = 20
	defaultLoadFactor      = 0.75
)

// Config holds construction settings for a Map or Set.
type Config struct {
	// maxHeight is the fixed number of levels of the structure
	maxHeight int

	// seed drives the level draw once every head slot is filled; zero picks a
	// time based seed
	seed uint64

	// initialCapacity pre-sizes the node arena
	initialCapacity int

	// loadFactor is recorded for interface compatibility only
	loadFactor float64
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig creates a Config with default values and applies opts.
func NewConfig(opts ...Option) Config {
	c := Config{
		maxHeight:       DefaultMaxHeight,
		initialCapacity: defaultInitialCapacity,
		loadFactor:      defaultLoadFactor,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxHeight < 1 {
		c.maxHeight = 1
	}
	if c.maxHeight > MaxLevel {
		c.maxHeight = MaxLevel
	}
	if c.initialCapacity < 0 {
		c.initialCapacity = 0
	}
	return c
}

// WithMaxHeight sets the number of levels. It never changes afterwards.
func WithMaxHeight(height int) Option {
	return func(c *Config) { c.maxHeight = height }
}

// WithSeed makes the random level draw reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.seed = seed }
}

// WithInitialCapacity sets how many nodes the arena reserves up front.
func WithInitialCapacity(n int) Option {
	return func(c *Config) { c.initialCapacity = n }
}

// WithLoadFactor is accepted for compatibility with hash based collections.
// It does not influence the structure.
func WithLoadFactor(f float64) Option {
	return func(c *Config) { c.loadFactor = f }
}

// MaxHeight returns the configured number of levels.
func (c Config) MaxHeight() int { return c.maxHeight }

// InitialCapacity returns the arena size hint.
func (c Config) InitialCapacity() int { return c.initialCapacity }

// LoadFactor returns the recorded load factor hint.
func (c Config) LoadFactor() float64 { return c.loadFactor }
