package parsing

import "errors"

// ErrAllProvidersExhausted is returned when every provider in the chain
// failed to produce a valid parse.
var ErrAllProvidersExhausted = errors.New("all AI providers exhausted")
