// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avlbst/bst"
	"github.com/bitmark-inc/avlbst/fault"
)

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	return tree.base.CheckUp()
}

// CheckCounts - check the cached heights and sizes
func (tree *Tree) CheckCounts() bool {
	return tree.base.CheckCounts()
}

// CheckBalance - full consistency check of the tree
//
// heights are recomputed from scratch so the stored balance of every
// node is verified independently of the cached values
func (tree *Tree) CheckBalance() error {
	if !tree.base.CheckUp() {
		return fault.ErrInconsistentLinks
	}
	if !tree.base.CheckOrder() {
		return fault.ErrOutOfOrder
	}
	if _, err := checkBalance(tree.base.Root()); nil != err {
		return err
	}
	if !tree.base.CheckCounts() {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: returns the recomputed height of a sub-tree
func checkBalance(p *bst.Node) (int, error) {
	if nil == p {
		return 0, nil
	}
	hl, err := checkBalance(p.Left())
	if nil != err {
		return 0, err
	}
	hr, err := checkBalance(p.Right())
	if nil != err {
		return 0, err
	}

	b := hr - hl
	if b < -1 || b > 1 {
		return 0, fmt.Errorf("key: %v  balance: %+d  %w", p.Key(), b, fault.ErrOutOfBalance)
	}
	if int(p.Balance()) != b {
		return 0, fmt.Errorf("key: %v  stored: %+d  computed: %+d  %w", p.Key(), p.Balance(), b, fault.ErrBalanceMismatch)
	}

	if hl > hr {
		return 1 + hl, nil
	}
	return 1 + hr, nil
}
