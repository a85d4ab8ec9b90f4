package parser

import (
	"bytes"
	"math"
	"strconv"

	"github.com/leastfixed/lambdavm/grid"
	"github.com/leastfixed/lambdavm/world"
)

// Parse builds a world.World from a raw input buffer: map lines, a blank
// line, then whitespace-tokenized metadata. The metadata section (and the
// blank line separating it from the map) may be absent entirely.
func Parse(input []byte) (*world.World, error) {
	lines, metadata := splitMapAndMetadata(input)

	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}
	height := len(lines)

	// The grid buffer is (width+1)*height + 1 bytes (grid.New). An empty
	// map legitimately yields width=height=0, a valid degenerate world —
	// only a length computation that overflows int is an allocation
	// failure.
	if length := (int64(width) + 1) * int64(height); length+1 > math.MaxInt {
		return nil, ErrAllocation
	}

	w := world.New(width, height)
	for i, line := range lines {
		y := height - i
		for x := 1; x <= width; x++ {
			c := grid.Empty
			if x-1 < len(line) {
				c = grid.Cell(line[x-1])
			}
			noteCell(w, c, x, y)
			w.Grid.Set(x, y, c)
		}
	}

	parseMetadata(w, metadata)
	return w, nil
}

// noteCell records the side-table entries the copy pass tracks alongside
// the raw cell write: robot position, lift position, lambda count, and
// trampoline/target positions indexed by letter/digit ordinal.
func noteCell(w *world.World, c grid.Cell, x, y int) {
	switch {
	case c == grid.Robot:
		w.RobotX, w.RobotY = x, y
	case c == grid.Lambda:
		w.LambdaCount++
	case c == grid.ClosedLift:
		w.LiftX, w.LiftY = x, y
	case grid.IsTrampolineLetter(c):
		w.TrampolinePos[grid.TrampolineOrdinal(c)] = grid.Coord{X: x, Y: y}
	case grid.IsTargetDigit(c):
		w.TargetPos[grid.TargetOrdinal(c)] = grid.Coord{X: x, Y: y}
	}
}

// splitMapAndMetadata separates input into map lines (everything before
// the first blank line) and the raw metadata section (everything after
// it). If no blank line is present, the whole input is map lines and
// metadata is empty.
func splitMapAndMetadata(input []byte) (mapLines [][]byte, metadata []byte) {
	lines := bytes.Split(input, []byte("\n"))
	blankAt := len(lines)
	for i, l := range lines {
		if len(l) == 0 {
			blankAt = i
			break
		}
	}
	mapLines = lines[:blankAt]
	if blankAt+1 < len(lines) {
		metadata = bytes.Join(lines[blankAt+1:], []byte("\n"))
	}
	return mapLines, metadata
}

// parseMetadata whitespace-tokenizes metadata and applies each recognized
// key. An unrecognized key discards exactly the one token following it;
// no parse error is ever raised.
func parseMetadata(w *world.World, metadata []byte) {
	tokens := bytes.Fields(metadata)
	for i := 0; i < len(tokens); {
		key := string(tokens[i])
		i++
		switch key {
		case "Water":
			i = applyInt(tokens, i, &w.WaterLevel)
		case "Flooding":
			i = applyInt(tokens, i, &w.FloodingRate)
		case "Waterproof":
			i = applyInt(tokens, i, &w.RobotWaterproofing)
		case "Growth":
			i = applyInt(tokens, i, &w.BeardGrowthRate)
		case "Razors":
			i = applyInt(tokens, i, &w.RazorCount)
		case "Trampoline":
			i = applyTrampolineBinding(w, tokens, i)
		default:
			i++ // discard the token following an unrecognized key
		}
	}
}

// applyInt consumes one token as an integer value, if present, and
// advances past it. A non-numeric token parses as 0, matching atoi's
// behavior on non-digit input in the reference implementation.
func applyInt(tokens [][]byte, i int, dst *int) int {
	if i >= len(tokens) {
		return i
	}
	n, _ := strconv.Atoi(string(tokens[i]))
	*dst = n
	return i + 1
}

// applyTrampolineBinding consumes "X targets D" starting at i and binds
// trampoline letter X to target digit D. A malformed sequence (missing
// the literal "targets", out-of-range letter/digit, or running out of
// tokens) is silently skipped one token at a time rather than erroring.
func applyTrampolineBinding(w *world.World, tokens [][]byte, i int) int {
	if i+2 >= len(tokens) || string(tokens[i+1]) != "targets" {
		return i + 1
	}
	letterTok, digitTok := tokens[i], tokens[i+2]
	if len(letterTok) == 1 && len(digitTok) == 1 {
		letter, digit := grid.Cell(letterTok[0]), grid.Cell(digitTok[0])
		if grid.IsTrampolineLetter(letter) && grid.IsTargetDigit(digit) {
			ord := grid.TrampolineOrdinal(letter)
			if w.TrampolineTarget[ord] < 0 {
				w.TrampolineCount++
			}
			w.TrampolineTarget[ord] = grid.TargetOrdinal(digit)
		}
	}
	return i + 3
}
