// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - return the node holding key, or nil
func (tree *Tree) Find(key Item) *Node {
	p := tree.root
	for nil != p {
		c := p.key.Compare(key)
		switch {
		case c > 0: // p.key > key
			p = p.left
		case c < 0: // p.key < key
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Search - find a specific item and its zero based index
//
// returns nil and -1 if the key is not in the tree
func (tree *Tree) Search(key Item) (*Node, int) {
	return search(key, tree.root, 0)
}

func search(key Item, tree *Node, index int) (*Node, int) {
	if nil == tree {
		return nil, -1
	}

	c := tree.key.Compare(key)
	switch {
	case c > 0: // tree.key > key
		return search(key, tree.left, index)
	case c < 0: // tree.key < key
		return search(key, tree.right, index+tree.left.Size()+1)
	default:
		return tree, index + tree.left.Size()
	}
}
