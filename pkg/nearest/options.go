package nearest

import (
	"strings"

	"github.com/agentstation/swatchmap/pkg/constants"
	"github.com/agentstation/swatchmap/pkg/errors"
)

// Method selects the color difference formula.
type Method string

// Supported methods.
const (
	MethodCIEDE2000 Method = "ciede2000"
	MethodCIE76     Method = "cie76"
)

// ParseMethod resolves a method name. "deltae76" and "deltae00" are
// accepted as aliases.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ciede2000", "deltae00", "de2000":
		return MethodCIEDE2000, nil
	case "cie76", "deltae76", "de76":
		return MethodCIE76, nil
	}
	return "", errors.NewValidationError("method", s, "must be ciede2000 or cie76")
}

// Options configures a lookup.
type Options struct {
	Method    Method
	Threshold float64
	Limit     int
}

// Option is a function that configures a lookup.
type Option func(*Options)

// WithMethod sets the difference formula.
func WithMethod(m Method) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithThreshold keeps only matches at or below d. Non-positive values
// keep the default.
func WithThreshold(d float64) Option {
	return func(o *Options) {
		if d > 0 {
			o.Threshold = d
		}
	}
}

// WithLimit caps the number of matches returned. Non-positive values keep
// the default.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Limit = n
		}
	}
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) *Options {
	o := &Options{
		Method:    MethodCIEDE2000,
		Threshold: constants.DefaultMatchThreshold,
		Limit:     constants.DefaultMatchLimit,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
