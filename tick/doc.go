// Package tick implements the World Update: the simultaneous per-cell
// resolution rule applied after every non-terminal move. All predicates
// are read from a prior, read-only snapshot; all effects are written to a
// separate next snapshot the caller has already seeded as a clone of
// prior. This two-snapshot discipline is what makes "simultaneous" cell
// updates well defined — see package vm for where prior and next come
// from.
//
// Update applies the full rule set (rock falls/slides, beard growth, lift
// opening, crush detection, drowning, flooding). UpdateIgnoringRobot
// applies only the world-dynamics subset (rock falls/slides, lift opening)
// with the robot treated as a ghost; it is used by package costtable to
// advance the world between BFS stages without ending the search early on
// a crush or drowning that would never actually happen mid-search.
package tick
