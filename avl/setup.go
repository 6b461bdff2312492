// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"

	"github.com/bitmark-inc/avlbst/bst"
)

// Item - a key item must implement the Compare function
type Item = bst.Item

// Node - a node in the tree
type Node = bst.Node

// Tree - type to hold the root node of a tree
type Tree struct {
	base   *bst.Tree
	tracer Tracer
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		base:   bst.New(),
		tracer: nil,
	}
}

// SetTracer - report each rotation case applied, nil to disable
func (tree *Tree) SetTracer(tracer Tracer) {
	tree.tracer = tracer
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return tree.base.IsEmpty()
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.base.Count()
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.base.Root()
}

// First - return the node with the lowest key value
func (tree *Tree) First() *Node {
	return tree.base.First()
}

// Last - return the node with the highest key value
func (tree *Tree) Last() *Node {
	return tree.base.Last()
}

// Predecessor - in-order predecessor of a node, nil for the first node
func (tree *Tree) Predecessor(p *Node) *Node {
	return tree.base.Predecessor(p)
}

// Successor - in-order successor of a node, nil for the last node
func (tree *Tree) Successor(p *Node) *Node {
	return tree.base.Successor(p)
}

// Print - display an ASCII graphic representation of the tree
func (tree *Tree) Print(printData bool) int {
	return tree.base.Print(printData)
}

// Fprint - write an ASCII graphic representation of the tree to w
func (tree *Tree) Fprint(w io.Writer, printData bool) int {
	return tree.base.Fprint(w, printData)
}
