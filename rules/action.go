package rules

import (
	"fmt"

	"github.com/plus3/scaletris/block"
	"github.com/plus3/scaletris/board"
)

// Action is a player transform of the active block.
type Action uint8

const (
	MoveLeft Action = iota
	MoveRight
	FlipVertical
	FlipHorizontal
	Rotate
	ScaleUp
	ScaleDown
	Drop

	numActions
)

var actionNames = [numActions]string{
	MoveLeft:       "move-left",
	MoveRight:      "move-right",
	FlipVertical:   "flip-vertical",
	FlipHorizontal: "flip-horizontal",
	Rotate:         "rotate",
	ScaleUp:        "scale-up",
	ScaleDown:      "scale-down",
	Drop:           "drop",
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, 0, numActions)
	for a := range numActions {
		out = append(out, a)
	}
	return out
}

func (a Action) String() string {
	if a < numActions {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Valid reports whether a names a known action.
func (a Action) Valid() bool { return a < numActions }

// ParseAction returns the action with the given name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), nil
		}
	}
	return 0, fmt.Errorf("rules: unknown action %q", name)
}

var predicates = [numActions]func(*board.Board, *block.Block) bool{
	MoveLeft:       CanMoveLeft,
	MoveRight:      CanMoveRight,
	FlipVertical:   CanFlipVertical,
	FlipHorizontal: CanFlipHorizontal,
	Rotate:         CanRotate,
	ScaleUp:        CanScaleUp,
	ScaleDown:      CanScaleDown,
	Drop:           CanDrop,
}

// Allowed reports whether action is legal for blk on b. Unknown actions are
// never allowed.
func Allowed(a Action, b *board.Board, blk *block.Block) bool {
	if !a.Valid() {
		return false
	}
	return predicates[a](b, blk)
}
