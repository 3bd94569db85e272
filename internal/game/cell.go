package game

import "fmt"

// Kind enumerates the closed set of cell variants.
type Kind uint8

const (
	KindHiddenBlank Kind = iota
	KindHiddenMine
	KindRevealedBlank
	KindRevealedNumber
	KindExploded
	KindFlaggedMine
	KindFlaggedBlank
)

func (k Kind) String() string {
	switch k {
	case KindHiddenBlank:
		return "hidden-blank"
	case KindHiddenMine:
		return "hidden-mine"
	case KindRevealedBlank:
		return "revealed-blank"
	case KindRevealedNumber:
		return "revealed-number"
	case KindExploded:
		return "exploded"
	case KindFlaggedMine:
		return "flagged-mine"
	case KindFlaggedBlank:
		return "flagged-blank"
	default:
		return "unknown"
	}
}

// Cell is a single grid square. The count is only meaningful for
// KindRevealedNumber, where it lies in [1,8].
type Cell struct {
	kind  Kind
	count uint8
}

var (
	HiddenBlank   = Cell{kind: KindHiddenBlank}
	HiddenMine    = Cell{kind: KindHiddenMine}
	RevealedBlank = Cell{kind: KindRevealedBlank}
	Exploded      = Cell{kind: KindExploded}
	FlaggedMine   = Cell{kind: KindFlaggedMine}
	FlaggedBlank  = Cell{kind: KindFlaggedBlank}
)

// Number returns a revealed cell showing n adjacent mines. It panics when n is
// outside [1,8].
func Number(n int) Cell {
	if n < 1 || n > 8 {
		panic(fmt.Sprintf("game: adjacent mine count %d out of range", n))
	}
	return Cell{kind: KindRevealedNumber, count: uint8(n)}
}

// revealed maps an adjacency count onto the matching revealed variant.
func revealed(adjacent int) Cell {
	if adjacent == 0 {
		return RevealedBlank
	}
	return Number(adjacent)
}

func (c Cell) Kind() Kind { return c.kind }

// Count reports the adjacent mine count of a RevealedNumber cell and zero for
// every other variant.
func (c Cell) Count() int {
	if c.kind != KindRevealedNumber {
		return 0
	}
	return int(c.count)
}

// IsMine reports whether the cell carries a mine, whatever its representation.
func (c Cell) IsMine() bool {
	switch c.kind {
	case KindHiddenMine, KindFlaggedMine, KindExploded:
		return true
	case KindHiddenBlank, KindRevealedBlank, KindRevealedNumber, KindFlaggedBlank:
		return false
	default:
		return false
	}
}

func (c Cell) IsHidden() bool {
	return c.kind == KindHiddenBlank || c.kind == KindHiddenMine
}

func (c Cell) IsFlagged() bool {
	return c.kind == KindFlaggedBlank || c.kind == KindFlaggedMine
}

func (c Cell) IsRevealed() bool {
	return c.kind == KindRevealedBlank || c.kind == KindRevealedNumber
}

func (c Cell) String() string {
	if c.kind == KindRevealedNumber {
		return fmt.Sprintf("%s(%d)", c.kind, c.count)
	}
	return c.kind.String()
}
