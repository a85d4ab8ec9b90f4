// Package lambdavm implements a deterministic cave simulation: a robot
// navigates a grid of rock, earth, lambdas, water, beards, trampolines,
// and a lift, one command at a time.
//
// The simulation is organized as a pipeline of small packages, each owning
// one concern:
//
//	grid/      — cell alphabet and the flat byte-buffer grid
//	world/     — the World snapshot (grid plus counters and condition)
//	parser/    — turns a raw map-plus-metadata buffer into a World
//	move/      — the move executor: one robot command against one World
//	tick/      — rock falls, beard growth, lift opening, drowning, flooding
//	vm/        — the driver: move, then tick, one command at a time
//	costtable/ — hazard-aware shortest-cost table over reachable cells
//	gridview/  — static topology views of a World over core/bfs/dijkstra/gridgraph
//
// core/, bfs/, dijkstra/, gridgraph/, and dfs/ are the generic graph/grid
// algorithm layer gridview and costtable build on.
package lambdavm
