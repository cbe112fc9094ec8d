package dirtree

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidTraversal is returned for a `cd ..` issued at the root.
var ErrInvalidTraversal = errors.New("cannot change to parent of root directory")

// Builder replays transcript Records into a Tree. The cursor is the
// directory the transcript is currently "in", and starts at Root.
type Builder struct {
	tree   *Tree
	cursor NodeID
}

// NewBuilder returns a Builder over a new Tree.
func NewBuilder() *Builder {
	return &Builder{tree: NewTree(), cursor: Root}
}

// Tree returns the Tree being built.
func (b *Builder) Tree() *Tree { return b.tree }

// Cursor returns the current directory.
func (b *Builder) Cursor() NodeID { return b.cursor }

// Apply a Record to the Tree.
func (b *Builder) Apply(rec Record) error {
	switch rec.Kind {
	case List:
		// Entries which follow describe children of the cursor.

	case ChangeDirectory:
		switch rec.Path {
		case "/":
			// Transcripts begin at the root, which is where we start.
		case "..":
			var parent = b.tree.Parent(b.cursor)
			if parent == NoParent {
				return ErrInvalidTraversal
			}
			b.cursor = parent
		default:
			b.cursor, _ = b.tree.Child(b.cursor, rec.Path)
		}
		if log.IsLevelEnabled(log.TraceLevel) {
			log.WithField("cwd", b.tree.Path(b.cursor)).Trace("changed directory")
		}

	case Directory:
		b.tree.Child(b.cursor, rec.Path)

	case File:
		var id, _ = b.tree.Child(b.cursor, rec.Path)
		b.tree.Node(id).Size = rec.Size

	default:
		return errors.Errorf("unexpected record kind %s", rec.Kind)
	}
	return nil
}

// Build returns the Tree described by |records|.
func Build(records []Record) (*Tree, error) {
	var b = NewBuilder()
	var commands int

	for i, rec := range records {
		if err := b.Apply(rec); err != nil {
			return nil, errors.WithMessagef(err, "record %d (%s %s)", i+1, rec.Kind, rec.Path)
		}
		if rec.Kind.IsCommand() {
			commands++
		}
	}
	log.WithFields(log.Fields{
		"nodes":    b.tree.Len(),
		"commands": commands,
		"entries":  len(records) - commands,
	}).Debug("built directory tree")
	return b.tree, nil
}
