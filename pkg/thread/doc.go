// Package thread runs work on goroutines and hands back join handles.
//
// It covers the small surface the collections need from a threading
// service:
// - Spawn: start work and get a *JoinHandle
// - JoinHandle.Join/IsFinished: wait for, or poll, the outcome
// - Scope/Go: spawn under a concurrency limit and wait for all of them
// - Pool: queue work and run it in FIFO order on a fixed number of lines
//
// A panic inside work is recovered and reported as the Err of the join
// result; it never crashes the process.
package thread
