// Package rop defines the contract shared by the Option and Result value
// types: a value that is either a success payload or a failure payload.
//
// The contract has a single inspection primitive, Match. Every helper in
// this package is written against Match only:
// - Fold: collapse a contract value into R
// - MapOr/MapOrElse: transform success, eager or lazy default on failure
// - UnwrapOrElse: recover a T from the failure payload
//
// Concrete variants live in the option and result subpackages.
package rop
