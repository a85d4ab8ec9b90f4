// Package world defines World, the complete self-contained snapshot of a
// cave simulation at one tick boundary: the grid, robot position, lift
// location, water/flooding/waterproofing/beard/razor counters, trampoline
// bindings, move count, score, and terminal Condition.
//
// A World is a value the caller owns outright. Clone produces an
// independent copy (deep-copying the grid buffer); nothing about a World
// is ever mutated after it has been handed back to a caller except through
// an explicit Clone — see package vm for the clone-before-mutate discipline
// that the rest of this module relies on.
package world
