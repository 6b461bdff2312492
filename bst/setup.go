// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Tree - type to hold the root node of a tree
type Tree struct {
	root *Node
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root: nil,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.root.Size()
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// SetRoot - replace the root link, the new root's up link is cleared
func (tree *Tree) SetRoot(p *Node) {
	tree.root = p
	if nil != p {
		p.up = nil
	}
}

// Relink - put replacement into the slot of parent that held old
//
// a nil parent means old was the root.  The replacement (if any)
// has its up link pointed at parent.
func (tree *Tree) Relink(parent *Node, old *Node, replacement *Node) {
	if nil != replacement {
		replacement.up = parent
	}
	switch {
	case nil == parent:
		tree.root = replacement
	case parent.left == old:
		parent.left = replacement
	default:
		parent.right = replacement
	}
}

// refresh cached counts from p up to the root
func updateToRoot(p *Node) {
	for ; nil != p; p = p.up {
		p.Update()
	}
}
