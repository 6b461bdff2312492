// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/bst"
)

// Insert - insert a new node into the tree
//
// an existing key only has its value overwritten, the tree shape and
// balance are not changed; returns true if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	root, added := tree.insert(key, value, tree.base.Root(), nil)
	tree.base.SetRoot(root)
	return added
}

// internal routine for insert
// returns the possibly rotated root of the sub-tree p
func (tree *Tree) insert(key Item, value interface{}, p *bst.Node, parent *bst.Node) (*bst.Node, bool) {
	if nil == p { // insert new node
		return bst.NewNode(key, value, parent), true
	}

	added := false
	c := p.Key().Compare(key)
	switch {
	case c > 0: // p.key > key
		var left *bst.Node
		left, added = tree.insert(key, value, p.Left(), p)
		p.SetLeft(left)
		left.SetParent(p)
	case c < 0: // p.key < key
		var right *bst.Node
		right, added = tree.insert(key, value, p.Right(), p)
		p.SetRight(right)
		right.SetParent(p)
	default:
		p.SetValue(value)
		return p, false
	}

	if !added {
		return p, false
	}

	// once one rotation has restored the height of a sub-tree the
	// balance of all ancestors is unchanged, so no further case can
	// apply above it
	refresh(p)
	return tree.rebalance(p), true
}
