// Package dirtree reconstructs a directory tree from a terminal transcript of
// `cd` and `ls` commands and their output, and answers size queries over it.
//
// A transcript is processed in three stages. ParseRecord turns each line into
// a Record. A Builder replays Records against a Tree, holding a cursor to the
// current directory and creating nodes as they are first referenced. Finally
// TotalSize and Directories aggregate sizes over the finished Tree.
//
// Nodes are held in a flat table owned by the Tree and reference one another
// by NodeID, so the parent links used by `cd ..` never form ownership cycles.
package dirtree
