package state

import (
	"github.com/Jin42/SabberStone/internal/game/history"
)

// blockStack tracks the blocks opened and not yet closed, innermost last.
type blockStack struct {
	items []history.BlockStart
}

func (bs *blockStack) push(b history.BlockStart) {
	bs.items = append(bs.items, b)
}

func (bs *blockStack) pop() (history.BlockStart, error) {
	if len(bs.items) == 0 {
		return history.BlockStart{}, ErrNoOpenBlock
	}
	idx := len(bs.items) - 1
	b := bs.items[idx]
	bs.items = bs.items[:idx]
	return b, nil
}

func (bs *blockStack) peek() (history.BlockStart, bool) {
	if len(bs.items) == 0 {
		return history.BlockStart{}, false
	}
	return bs.items[len(bs.items)-1], true
}

// list returns a copy of the open blocks (innermost last).
func (bs *blockStack) list() []history.BlockStart {
	cpy := make([]history.BlockStart, len(bs.items))
	copy(cpy, bs.items)
	return cpy
}
