// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/bst"
)

// height of a sub-tree, zero when empty
//
// read from the node's cached height, which every mutation keeps
// current bottom-up
func height(n *bst.Node) int {
	return n.Height()
}

// balance factor of a sub-tree: height(right) - height(left)
func balance(n *bst.Node) int {
	if nil == n {
		return 0
	}
	return height(n.Right()) - height(n.Left())
}

// recompute cached counts and the stored balance of n
// from its children, which must already be current
func refresh(n *bst.Node) {
	n.Update()
	n.SetBalance(int8(balance(n)))
}
