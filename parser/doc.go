// Package parser turns a raw input buffer into an initial world.World.
//
// Parsing runs in the three phases described by the reference VM's
// scan_input/copy_input/copy_input_metadata: a scan pass measures the map
// rectangle, a copy pass fills the grid while noting the robot, the lift,
// the lambda count, and trampoline/target positions, and a metadata pass
// whitespace-tokenizes whatever follows the first blank line into the
// scalar fields and trampoline bindings. The parser is total: malformed or
// missing metadata is silently ignored rather than rejected, matching
// "Fails ... only on allocation failure; otherwise the parser is total."
// An empty map parses without error into a degenerate world; the only
// error this package returns is ErrAllocation, for map dimensions too
// large to allocate.
package parser
