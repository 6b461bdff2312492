// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlbst/bst"
)

// rotate p down to the left, its right child c takes its place
//
//	    p                c
//	   / \              / \
//	  a   c     →      p   z
//	     / \          / \
//	    t   z        a   t
//
// returns c, or p unchanged if there is nothing to rotate
func (tree *Tree) rotateLeft(p *bst.Node) *bst.Node {
	if nil == p {
		return p
	}
	c := p.Right()
	if nil == c {
		return p
	}
	t := c.Left()
	parent := p.Parent()

	p.SetRight(t)
	if nil != t {
		t.SetParent(p)
	}
	c.SetLeft(p)
	p.SetParent(c)
	tree.base.Relink(parent, p, c)

	// p is now below c so must be first
	refresh(p)
	refresh(c)
	return c
}

// rotate p down to the right, its left child c takes its place
//
//	      p            c
//	     / \          / \
//	    c   z   →    a   p
//	   / \              / \
//	  a   t            t   z
//
// returns c, or p unchanged if there is nothing to rotate
func (tree *Tree) rotateRight(p *bst.Node) *bst.Node {
	if nil == p {
		return p
	}
	c := p.Left()
	if nil == c {
		return p
	}
	t := c.Right()
	parent := p.Parent()

	p.SetLeft(t)
	if nil != t {
		t.SetParent(p)
	}
	c.SetRight(p)
	p.SetParent(c)
	tree.base.Relink(parent, p, c)

	refresh(p)
	refresh(c)
	return c
}

// apply the rotation case needed to restore balance at p
//
// p must already be refreshed; returns the root of the sub-tree
// that now occupies p's place
func (tree *Tree) rebalance(p *bst.Node) *bst.Node {
	b := balance(p)
	switch {
	case b < -1 && balance(p.Left()) <= 0:
		tree.trace(LeftLeft, p)
		return tree.rotateRight(p)

	case b > 1 && balance(p.Right()) >= 0:
		tree.trace(RightRight, p)
		return tree.rotateLeft(p)

	case b > 1: // right child leans left
		tree.trace(RightLeft, p)
		tree.rotateRight(p.Right())
		return tree.rotateLeft(p)

	case b < -1: // left child leans right
		tree.trace(LeftRight, p)
		tree.rotateLeft(p.Left())
		return tree.rotateRight(p)
	}
	return p
}
