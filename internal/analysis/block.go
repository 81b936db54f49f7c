package analysis

import (
	"sbx/internal/source"
)

// BlockKind identifies one of the paired control constructs of the language.
type BlockKind uint8

const (
	BlockIf BlockKind = iota
	BlockWhile
	BlockFor
	BlockSub

	numBlockKinds
)

func (k BlockKind) String() string {
	return k.Opener()
}

// Opener returns the canonical keyword that opens the block.
func (k BlockKind) Opener() string {
	switch k {
	case BlockIf:
		return "If"
	case BlockWhile:
		return "While"
	case BlockFor:
		return "For"
	case BlockSub:
		return "Sub"
	}
	return "?"
}

// Closer returns the canonical keyword that closes the block.
func (k BlockKind) Closer() string {
	switch k {
	case BlockIf:
		return "EndIf"
	case BlockWhile:
		return "EndWhile"
	case BlockFor:
		return "EndFor"
	case BlockSub:
		return "EndSub"
	}
	return "?"
}

// ControlStatement — вхождение блочного ключевого слова в конкретной строке.
// Name заполняется только для Sub.
type ControlStatement struct {
	Kind BlockKind
	Name string
	Line uint32 // 1-based
	Span source.Span
}

// BlockPair — сматченная пара открывашка/закрывашка одного вида.
type BlockPair struct {
	Kind  BlockKind
	Open  ControlStatement
	Close ControlStatement
}
