package explode

// DefaultCodeExtension is used for code cells when the notebook metadata
// does not name a language file extension.
const DefaultCodeExtension = ".py"

// Options configures [Explode].
type Options struct {
	// CodeExtension is the source file extension for code cells when
	// metadata.language_info.file_extension is absent.
	CodeExtension string

	// NewID mints identifiers for cells without one.
	NewID IDGenerator
}

// Option mutates Options.
type Option func(*Options)

// WithCodeExtension sets the fallback code cell extension.
func WithCodeExtension(ext string) Option {
	return func(o *Options) {
		if ext != "" {
			o.CodeExtension = ext
		}
	}
}

// WithIDGenerator replaces the UUID generator, mainly for deterministic tests.
func WithIDGenerator(gen IDGenerator) Option {
	return func(o *Options) {
		if gen != nil {
			o.NewID = gen
		}
	}
}

func newOptions(opts []Option) Options {
	o := Options{CodeExtension: DefaultCodeExtension, NewID: NewUUID}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
