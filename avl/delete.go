// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree
//
// returns the value that was stored and true, an absent key is not an
// error and just returns nil and false
func (tree *Tree) Remove(key Item) (interface{}, bool) {
	q := tree.base.Find(key)
	if nil == q { // key not in tree
		return nil, false
	}
	value := q.Value() // preserve the value part

	// two children: change places with the predecessor, which has no
	// right child, so q then has at most one child
	if nil != q.Left() && nil != q.Right() {
		tree.nodeSwap(q, tree.base.Predecessor(q))
	}

	// removal can shorten every sub-tree on the path, so each level
	// up to the root must be checked
	p := tree.base.Splice(q)
	for nil != p {
		refresh(p)
		p = tree.rebalance(p).Parent()
	}

	return value, true
}
