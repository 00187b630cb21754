package datadiff

// Config holds every parameter the differs understand. Each differ reads only
// the fields that apply to it and ignores the rest, so one set of options can
// be shared across calls
type Config struct {
	// IgnoreArrayOrder compares sequences as multisets. Used by Equal,
	// DiffObject and DiffList
	IgnoreArrayOrder bool
	// ShowOnly limits the entries returned by DiffList and DiffObject to the
	// listed statuses. The envelope status is always computed before filtering
	ShowOnly []Status
	// Granularity controls how ShowOnly prunes nested object entries
	Granularity Granularity
	// ReferenceKey names a field used to match keyed-record list elements by
	// identity instead of full-value equality
	ReferenceKey string
	// ConsiderMoveAsUpdate reports list elements that changed position as
	// updated rather than moved
	ConsiderMoveAsUpdate bool

	// Separation selects how text is split into tokens
	Separation Separation
	// Mode selects the text alignment algorithm
	Mode Mode
	// IgnoreCase folds case before comparing tokens
	IgnoreCase bool
	// IgnorePunctuation strips punctuation before comparing tokens
	IgnorePunctuation bool
	// Locale is a BCP 47 tag used for case mapping, eg: "tr" or "en-US"
	Locale string

	// Provide a non-nil stats pointer & the differ will populate it with counts
	// from the diff
	Stats *Stats
}

// Option is a function that adjusts a config, zero or more Options can be
// passed to any differ
type Option func(cfg *Config)

func newConfig(opts []Option) *Config {
	cfg := &Config{
		Granularity: GranularityBasic,
		Separation:  SeparationWord,
		Mode:        ModeVisual,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// OptionConfig replaces the entire configuration with a copy of c. Options
// that follow it still apply on top
func OptionConfig(c Config) Option {
	return func(cfg *Config) {
		*cfg = c
		if cfg.Granularity == "" {
			cfg.Granularity = GranularityBasic
		}
		if cfg.Separation == "" {
			cfg.Separation = SeparationWord
		}
		if cfg.Mode == "" {
			cfg.Mode = ModeVisual
		}
	}
}

// OptionIgnoreArrayOrder makes sequence comparison order-insensitive
func OptionIgnoreArrayOrder() Option {
	return func(cfg *Config) {
		cfg.IgnoreArrayOrder = true
	}
}

// OptionShowOnly restricts returned entries to the given statuses
func OptionShowOnly(statuses ...Status) Option {
	return func(cfg *Config) {
		cfg.ShowOnly = append([]Status(nil), statuses...)
	}
}

// OptionGranularity sets how OptionShowOnly treats nested object entries
func OptionGranularity(g Granularity) Option {
	return func(cfg *Config) {
		cfg.Granularity = g
	}
}

// OptionReferenceKey matches list elements by the value stored at key
func OptionReferenceKey(key string) Option {
	return func(cfg *Config) {
		cfg.ReferenceKey = key
	}
}

// OptionConsiderMoveAsUpdate reports moved list elements as updated
func OptionConsiderMoveAsUpdate() Option {
	return func(cfg *Config) {
		cfg.ConsiderMoveAsUpdate = true
	}
}

// OptionSeparation sets the text tokenization unit
func OptionSeparation(s Separation) Option {
	return func(cfg *Config) {
		cfg.Separation = s
	}
}

// OptionMode sets the text alignment algorithm
func OptionMode(m Mode) Option {
	return func(cfg *Config) {
		cfg.Mode = m
	}
}

// OptionIgnoreCase compares text tokens case-insensitively
func OptionIgnoreCase() Option {
	return func(cfg *Config) {
		cfg.IgnoreCase = true
	}
}

// OptionIgnorePunctuation compares text tokens with punctuation removed
func OptionIgnorePunctuation() Option {
	return func(cfg *Config) {
		cfg.IgnorePunctuation = true
	}
}

// OptionLocale sets the locale used for case mapping
func OptionLocale(tag string) Option {
	return func(cfg *Config) {
		cfg.Locale = tag
	}
}

// OptionSetStats will set the passed-in stats pointer when a differ is called
func OptionSetStats(st *Stats) Option {
	return func(cfg *Config) {
		cfg.Stats = st
	}
}
