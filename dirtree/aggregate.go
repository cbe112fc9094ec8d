package dirtree

import (
	"iter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrCapacity is returned when the used space of a Tree exceeds the disk
	// capacity, or when there is already more free space than required.
	ErrCapacity = errors.New("disk usage outside of capacity bounds")
	// ErrNoCandidate is returned when no directory is large enough to free
	// the required space.
	ErrNoCandidate = errors.New("no directory frees enough space")
)

// Limits parameterize the size queries.
type Limits struct {
	// SmallDirectory is the inclusive upper bound of directories summed by SumSmall.
	SmallDirectory uint64
	// Capacity is the total size of the disk.
	Capacity uint64
	// Required is the free space needed by the update.
	Required uint64
}

// DefaultLimits are the limits of the device in question.
var DefaultLimits = Limits{
	SmallDirectory: 100_000,
	Capacity:       70_000_000,
	Required:       30_000_000,
}

// TotalSize returns the size of |id| plus that of all its descendants.
func TotalSize(t *Tree, id NodeID) uint64 {
	var n = t.Node(id)
	var total = n.Size

	for _, child := range n.Children {
		total += TotalSize(t, child)
	}
	return total
}

// Sizes returns the TotalSize of every node of |t|, indexed by NodeID,
// computed in a single post-order pass.
func Sizes(t *Tree) []uint64 {
	var out = make([]uint64, t.Len())

	var visit func(NodeID) uint64
	visit = func(id NodeID) uint64 {
		var n = t.Node(id)
		var total = n.Size
		for _, child := range n.Children {
			total += visit(child)
		}
		out[id] = total
		return total
	}
	visit(Root)

	return out
}

// Directories yields every directory of |t| in pre-order, beginning with
// Root and visiting children in name order.
func Directories(t *Tree) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		var walk func(NodeID) bool
		walk = func(id NodeID) bool {
			if !yield(id) {
				return false
			}
			var n = t.Node(id)
			for _, name := range t.ChildNames(id) {
				if child := n.Children[name]; t.IsDir(child) && !walk(child) {
					return false
				}
			}
			return true
		}
		walk(Root)
	}
}

// SumSmall returns the sum of total sizes of directories whose total size
// is at most |limits.SmallDirectory|. Nested directories are counted once
// each, so their files may contribute more than once.
func SumSmall(t *Tree, limits Limits) uint64 {
	var sizes = Sizes(t)
	var sum uint64

	for id := range Directories(t) {
		if sizes[id] <= limits.SmallDirectory {
			sum += sizes[id]
		}
	}
	return sum
}

// SmallestToFree returns the total size of the smallest directory which,
// if deleted, would leave at least |limits.Required| space free.
func SmallestToFree(t *Tree, limits Limits) (uint64, error) {
	var sizes = Sizes(t)
	var used = sizes[Root]

	if used > limits.Capacity {
		return 0, errors.WithMessagef(ErrCapacity, "used %d > capacity %d", used, limits.Capacity)
	}
	var free = limits.Capacity - used

	if free > limits.Required {
		return 0, errors.WithMessagef(ErrCapacity, "free %d already exceeds required %d", free, limits.Required)
	}
	var needed = limits.Required - free

	log.WithFields(log.Fields{
		"used":   humanize.Comma(int64(used)),
		"free":   humanize.Comma(int64(free)),
		"needed": humanize.Comma(int64(needed)),
	}).Debug("searching for directory to delete")

	var best, found = uint64(0), false
	for id := range Directories(t) {
		if s := sizes[id]; s >= needed && (!found || s < best) {
			best, found = s, true
		}
	}
	if !found {
		return 0, errors.WithMessagef(ErrNoCandidate, "needed %d", needed)
	}
	return best, nil
}

// DirectorySize is the path and total size of a directory.
type DirectorySize struct {
	Path string
	Size uint64
}

// Listing returns the path and total size of each directory of |t|, in the
// order of Directories.
func Listing(t *Tree) []DirectorySize {
	var sizes = Sizes(t)
	var out []DirectorySize

	for id := range Directories(t) {
		out = append(out, DirectorySize{Path: t.Path(id), Size: sizes[id]})
	}
	return out
}
