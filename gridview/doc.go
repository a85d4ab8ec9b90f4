// Package gridview adapts a world.World's static grid into the teacher
// corpus's own grid/graph analysis types, so questions about a cave's
// topology that do not depend on the evolving hazard dynamics — "is the
// lift reachable from the robot's spawn at all, ignoring rockfalls", "how
// many cells would need clearing to connect two pockets" — can be
// answered with the library package (rather than rebuilt from scratch)
// the rest of the corpus already carries for grid analysis.
//
// This is static analysis of one frozen snapshot: it has no notion of a
// falling rock landing mid-search the way package costtable does. For
// hazard-aware reachability, use costtable.Build instead.
//
// StaticDistance wraps dijkstra.Dijkstra over ToCoreGraph's view for a
// single-pair shortest distance; HasLoop wraps dfs.DetectCycles to answer
// whether a cave's walkable area has a redundant loop rather than being a
// single corridor or tree of corridors.
package gridview
