// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/fault"
)

// Find - return the node holding key, or nil
func (tree *Tree) Find(key Item) *Node {
	return tree.base.Find(key)
}

// Lookup - fetch the value stored for key
//
// returns fault.ErrKeyNotFound if the key is not in the tree
func (tree *Tree) Lookup(key Item) (interface{}, error) {
	p := tree.base.Find(key)
	if nil == p {
		return nil, fault.ErrKeyNotFound
	}
	return p.Value(), nil
}

// Search - find a specific item and its zero based index
func (tree *Tree) Search(key Item) (*Node, int) {
	return tree.base.Search(key)
}

// Get - index to specific item
func (tree *Tree) Get(index int) *Node {
	return tree.base.Get(index)
}
