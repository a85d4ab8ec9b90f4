// Package move implements the Move Executor: applying a single command to
// a World, mutating only its robot-visible aspects (grid cells, robot
// position, counters, score, move count, and condition). It never advances
// rock falls, beard growth, lift opening, drowning, or flooding — that is
// package tick's job, invoked by the driver (package vm) after a
// non-terminal Execute.
package move
