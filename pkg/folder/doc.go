// Package folder normalizes heterogeneous folder-template shapes into one
// canonical Node representation and merges two folder trees by name with
// recursive union semantics. It is the pure core the template loader and the
// filesystem materializer are built around: no I/O, no shared state, every
// operation is a plain function of its inputs.
package folder
