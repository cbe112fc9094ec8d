package crates

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrInsufficientCrates is returned when an Instruction moves more crates
	// than its source Stack holds.
	ErrInsufficientCrates = errors.New("insufficient crates on source stack")
	// ErrUnknownStack is returned when an Instruction names a stack which
	// doesn't exist.
	ErrUnknownStack = errors.New("unknown stack")
)

// Mover applies an Instruction to Stacks, in place.
type Mover interface {
	Move(Stacks, Instruction) error
}

// SingleMover moves crates one at a time, so that a moved block arrives in
// reverse order (the CrateMover 9000).
type SingleMover struct{}

// BulkMover moves a block of crates at once, preserving its order (the
// CrateMover 9001).
type BulkMover struct{}

// Move implements Mover.
func (SingleMover) Move(s Stacks, inst Instruction) error {
	if err := check(s, inst); err != nil {
		return err
	}
	for n := 0; n != inst.Quantity; n++ {
		var src = s[inst.Source]
		var c = src[len(src)-1]
		s[inst.Source] = src[:len(src)-1]
		s[inst.Destination] = append(s[inst.Destination], c)
	}
	return nil
}

// Move implements Mover.
func (BulkMover) Move(s Stacks, inst Instruction) error {
	if err := check(s, inst); err != nil {
		return err
	}
	var src = s[inst.Source]
	var at = len(src) - inst.Quantity

	// Copy the block out first, as Source and Destination may be the same Stack.
	var block = append(Stack(nil), src[at:]...)
	s[inst.Source] = src[:at]
	s[inst.Destination] = append(s[inst.Destination], block...)
	return nil
}

func check(s Stacks, inst Instruction) error {
	if inst.Source < 0 || inst.Source >= len(s) {
		return errors.WithMessagef(ErrUnknownStack, "source %d of %d stacks", inst.Source+1, len(s))
	} else if inst.Destination < 0 || inst.Destination >= len(s) {
		return errors.WithMessagef(ErrUnknownStack, "destination %d of %d stacks", inst.Destination+1, len(s))
	} else if inst.Quantity < 0 {
		return errors.Errorf("negative quantity %d", inst.Quantity)
	} else if l := len(s[inst.Source]); l < inst.Quantity {
		return errors.WithMessagef(ErrInsufficientCrates, "moving %d from stack %d of height %d",
			inst.Quantity, inst.Source+1, l)
	}
	return nil
}

// Replay applies |instructions| in order to |s| using Mover |m|.
func Replay(m Mover, s Stacks, instructions []Instruction) error {
	for i, inst := range instructions {
		if err := m.Move(s, inst); err != nil {
			return errors.WithMessagef(err, "instruction %d", i+1)
		}
	}
	log.WithFields(log.Fields{
		"mover":        moverName(m),
		"instructions": len(instructions),
	}).Debug("replayed instructions")
	return nil
}

func moverName(m Mover) string {
	switch m.(type) {
	case SingleMover, *SingleMover:
		return "single"
	case BulkMover, *BulkMover:
		return "bulk"
	default:
		return "other"
	}
}
