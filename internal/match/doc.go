// Package match finds the closest known word to a misspelled one, for the
// "did you mean" hints attached to diagnostics and schema errors.
package match
