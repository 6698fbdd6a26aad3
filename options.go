package textdebug

import "github.com/rs/zerolog"

type Option func(*Registry)

func WithPolicy(p Policy) Option {
	return func(r *Registry) { r.policy = p }
}

func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

func WithDebug(enabled bool) Option {
	return func(r *Registry) { r.debug = enabled }
}
