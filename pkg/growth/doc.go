// Package growth drives the random growth of a shape on the grid.
//
// An [Engine] starts from a shape holding only [grid.Origin] and performs a
// fixed number of steps. Each step computes the frontier of the current shape,
// hands it to a [selector.Selector] in canonical row-major order, and annexes
// the chosen cell. Because the frontier never overlaps the shape and every
// frontier cell touches the shape, the result after n steps always has exactly
// n+1 distinct cells and is edge-connected to the origin.
//
// # States
//
// The engine has one working state, [StateGrowing], which it leaves for
// [StateDone] after the configured number of steps. An engine configured with
// zero steps starts out done.
//
// # Determinism
//
// With a fixed [Options.Seed] (or a deterministic [Options.Selector]) the
// sequence of annexed cells, and therefore the final shape, is reproducible.
// A zero seed asks the engine to draw one from the runtime's random source.
package growth
