package dirtree

import (
	"path"
	"sort"
)

// NodeID indexes a node within its Tree.
type NodeID int

const (
	// Root is the NodeID of the root directory of every Tree.
	Root NodeID = 0
	// NoParent is the parent of Root.
	NoParent NodeID = -1
)

// Node is a file or directory of a Tree. Size is the intrinsic size of a
// file, and zero for a directory.
type Node struct {
	Name     string
	Size     uint64
	Parent   NodeID
	Children map[string]NodeID
}

// Tree is an arena of Nodes, rooted at Root.
type Tree struct {
	nodes []Node
}

// NewTree returns a Tree holding only an empty root directory.
func NewTree() *Tree {
	return &Tree{nodes: []Node{{Name: "/", Parent: NoParent}}}
}

// Len returns the number of nodes in the Tree, including Root.
func (t *Tree) Len() int { return len(t.nodes) }

// Node returns the node |id|.
func (t *Tree) Node(id NodeID) *Node { return &t.nodes[id] }

// Parent returns the parent of |id|, which is NoParent for Root.
func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].Parent }

// IsDir returns whether |id| is a directory: it has children and no
// intrinsic size. Root is always treated as a directory by Directories.
func (t *Tree) IsDir(id NodeID) bool {
	var n = &t.nodes[id]
	return n.Size == 0 && len(n.Children) != 0
}

// Child returns the child |name| of |parent|, creating it if it doesn't
// exist. |created| reports whether a new node was added.
func (t *Tree) Child(parent NodeID, name string) (id NodeID, created bool) {
	if id, ok := t.nodes[parent].Children[name]; ok {
		return id, false
	}
	id = NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node{Name: name, Parent: parent})

	if t.nodes[parent].Children == nil {
		t.nodes[parent].Children = make(map[string]NodeID)
	}
	t.nodes[parent].Children[name] = id
	return id, true
}

// ChildNames returns the names of |id|'s children, in sorted order.
func (t *Tree) ChildNames(id NodeID) []string {
	var names = make([]string, 0, len(t.nodes[id].Children))
	for name := range t.nodes[id].Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the absolute path of |id|.
func (t *Tree) Path(id NodeID) string {
	var parts []string
	for ; id != Root && id != NoParent; id = t.nodes[id].Parent {
		parts = append(parts, t.nodes[id].Name)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return path.Join(append([]string{"/"}, parts...)...)
}
