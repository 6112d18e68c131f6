package report

import "io"

// Format selects the dataset encoding.
type Format int

// Format constants.
const (
	FormatJSON Format = iota
	FormatYAML
)

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// Options is the configuration for encoding a dataset.
type Options struct {
	writer io.Writer
	format Format
}

// Writer returns the writer, if one was set.
func (o *Options) Writer() io.Writer {
	return o.writer
}

// Format returns the encoding format.
func (o *Options) Format() Format {
	return o.format
}

// Defaults returns the default options.
func Defaults() *Options {
	return &Options{format: FormatJSON}
}

// Apply applies the given options.
func (o *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Option is a function that configures dataset encoding.
type Option func(*Options)

// WithFormat for a non-default encoding.
func WithFormat(f Format) Option {
	return func(o *Options) {
		o.format = f
	}
}

// WithWriter mirrors the encoded dataset to w as well.
func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.writer = w
	}
}
