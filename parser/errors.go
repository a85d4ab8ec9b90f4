package parser

import "errors"

// ErrAllocation is returned when the computed grid dimensions overflow the
// buffer length formula (width+1)*height + 1. Named for the reference VM's
// malloc-failure path, which Go has no direct equivalent of. An empty map
// (no lines before the first blank line, or no input at all) is not this
// case: it yields a legitimate degenerate 0x0 world, matching the
// reference parser's own total scan_input.
var ErrAllocation = errors.New("parser: world dimensions overflow")
