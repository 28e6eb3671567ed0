// Package chain provides a fluent wrapper around solo.Outcome for building
// synchronous railway chains.
//
// Key operations:
// - Start/FromValue: begin a chain from an Outcome or a value
// - Then/ThenTry/Map: move the success value to a new type
// - Validate/Ensure: check or observe the value without changing its type
// - Finally: collapse the chain into a plain value
package chain
