package safeunion

import (
	"github.com/rawbytedev/safeunion/endian"
	"go.uber.org/zap"
)

// Order is the byte order a schema presents on the wire.
type Order = endian.Order

// Mode selects how arrays and aggregates are swapped.
type Mode = endian.Mode

const (
	Little = endian.Little
	Big    = endian.Big

	PerElement = endian.PerElement
	WholeValue = endian.WholeValue
)

// Options configures a schema.
type Options struct {
	// Mode is the composite swap mode. Defaults to PerElement.
	Mode Mode

	// Logger receives definition-time events. Nil means the package logger.
	Logger *zap.Logger

	// Name labels the schema in logs and descriptions.
	Name string
}

var defaultOptions = Options{
	Mode: PerElement,
}

type Option func(*Options)

// WithMode sets the composite swap mode.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithLogger sets the logger used while defining the schema.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithName labels the schema.
func WithName(name string) Option {
	return func(o *Options) { o.Name = name }
}
