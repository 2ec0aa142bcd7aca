package core

// RuntimeConfig contains settings resolved at startup and handed to the
// front-ends.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed, 0 means time-based
	Color   bool  // Whether tiles get a background colour
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
		Color:   true,
	}
}
