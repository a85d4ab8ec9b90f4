// Package costtable builds a safety-aware distance table over the cells
// reachable from a source position under the ongoing world dynamics: a
// staged breadth-first search where the frontier advances one
// tick.UpdateIgnoringRobot step between stages, so later expansions see a
// later state of falling rocks. This differs from a plain unweighted BFS
// (as in package bfs) in exactly that respect — the graph being searched
// is not fixed, it evolves stage by stage alongside the search itself.
//
// Build mirrors the teacher's bfs.BFS in shape: functional Options, a
// Result analogous to bfs.BFSResult, and Unreachable standing in for
// bfs's absence-from-Depth-map convention (the cost map holds only the
// cells the search reached, and CostAt returns the Unreachable sentinel
// for any coordinate that is absent from it).
package costtable
