// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/bst"
)

// exchange the positions of two nodes, the balance factor describes
// the position so it moves with the height and size
func (tree *Tree) nodeSwap(n1 *bst.Node, n2 *bst.Node) {
	if nil == n1 || nil == n2 || n1 == n2 {
		return
	}
	tree.base.NodeSwap(n1, n2)
	b := n1.Balance()
	n1.SetBalance(n2.Balance())
	n2.SetBalance(b)
}
