// Package vm composes package move and package tick into the driver loop
// described by the reference VM's make_one_move/make_moves: apply a
// command to a clone of the current snapshot, then — only if the world is
// still running — clone again and advance one tick. A terminal snapshot
// absorbs every further command unchanged, and Abort short-circuits the
// tick entirely since the simulation has already ended.
package vm
