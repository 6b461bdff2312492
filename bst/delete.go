// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Remove - removes a specific item from the tree without any balancing
//
// returns the value that was stored and true, or nil and false if the
// key was not in the tree
func (tree *Tree) Remove(key Item) (interface{}, bool) {
	q := tree.Find(key)
	if nil == q {
		return nil, false
	}
	value := q.value // preserve the value part

	// reduce to the zero or one child case
	if nil != q.left && nil != q.right {
		tree.NodeSwap(q, tree.Predecessor(q))
	}

	parent := tree.Splice(q)
	updateToRoot(parent)

	return value, true
}

// Splice - unlink a node having at most one child
//
// the child (or nil) takes the node's place below its parent, the
// node is released and the former parent is returned.  Cached counts
// of the ancestors are not updated.
func (tree *Tree) Splice(q *Node) *Node {
	if nil != q.left && nil != q.right {
		panic("splice: node has two children")
	}
	child := q.left
	if nil == child {
		child = q.right
	}
	parent := q.up
	tree.Relink(parent, q, child)
	q.Release()
	return parent
}
