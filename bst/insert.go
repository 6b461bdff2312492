// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - insert a new node into the tree without any balancing
//
// an existing key has its value overwritten in place and the tree
// shape is unchanged; returns true only if a new node was added
func (tree *Tree) Insert(key Item, value interface{}) bool {
	if nil == tree.root {
		tree.root = NewNode(key, value, nil)
		return true
	}

	p := tree.root
	for {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			if nil == p.left {
				p.left = NewNode(key, value, p)
				updateToRoot(p)
				return true
			}
			p = p.left
		case c < 0: // p.key < key
			if nil == p.right {
				p.right = NewNode(key, value, p)
				updateToRoot(p)
				return true
			}
			p = p.right
		default:
			p.value = value
			return false
		}
	}
}
