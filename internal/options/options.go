// Package options implements generic functional options.
package options

// OptionConstructor returns the default configuration.
type OptionConstructor[T any] func() T

// OptionCallback modifies a configuration.
type OptionCallback[T any] func(*T)

// ApplyOptions builds a configuration with constructor and applies cbs
// to it in order. A nil constructor starts from the zero value.
func ApplyOptions[T any](constructor OptionConstructor[T], cbs []OptionCallback[T]) T {
	var opts T

	if constructor != nil {
		opts = constructor()
	}

	for _, cb := range cbs {
		cb(&opts)
	}

	return opts
}
