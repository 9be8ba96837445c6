package content

// Options controls text transforms applied during normalization.
type Options struct {
	// NewlineMarker separates lines inside a scene's text field.
	NewlineMarker string
	// ListSeparator splits list-valued fields such as quiz categories.
	ListSeparator string
}

// DefaultOptions returns the separators used by the authoring format.
func DefaultOptions() Options {
	return Options{NewlineMarker: "|", ListSeparator: ","}
}

func (opts Options) withDefaults() Options {
	defaults := DefaultOptions()
	if opts.NewlineMarker == "" {
		opts.NewlineMarker = defaults.NewlineMarker
	}
	if opts.ListSeparator == "" {
		opts.ListSeparator = defaults.ListSeparator
	}
	return opts
}
