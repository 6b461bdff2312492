// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/bst"
)

// Case - the rotation case applied at an unbalanced node
type Case int

// the four rotation cases, named by the heavy path below the node
const (
	LeftLeft   Case = iota // single right rotation
	RightRight Case = iota // single left rotation
	LeftRight  Case = iota // left child left, then node right
	RightLeft  Case = iota // right child right, then node left
)

func (c Case) String() string {
	switch c {
	case LeftLeft:
		return "left-left"
	case RightRight:
		return "right-right"
	case LeftRight:
		return "left-right"
	case RightLeft:
		return "right-left"
	default:
		return "unknown"
	}
}

//go:generate mockgen -destination=mocks/mock_tracer.go -package=mocks github.com/bitmark-inc/avlbst/avl Tracer

// Tracer - receives a call for every rotation case applied
//
// key is the key of the node that was found out of balance
type Tracer interface {
	Rebalanced(c Case, key Item)
}

func (tree *Tree) trace(c Case, p *bst.Node) {
	if nil != tree.tracer {
		tree.tracer.Rebalanced(c, p.Key())
	}
}
