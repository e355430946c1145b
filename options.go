package di

import (
	"github.com/0xalexb/lintconfig/configfactory"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules  []fx.Option
	LogLevel string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFactory adds a module supplying a *configfactory.Factory,
// built from opts, to the Fx container. Call at most once; subsequent
// fx.Invoke/fx.Provide functions may simply take *configfactory.Factory
// as a parameter to receive it.
func WithConfigFactory(opts ...configfactory.Option) Option {
	return func(o *Options) {
		o.Modules = append(o.Modules, fx.Supply(configfactory.New(opts...)))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
