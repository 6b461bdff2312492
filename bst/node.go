// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Item - a key item must implement the Compare function
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Node - a node in the tree
type Node struct {
	left    *Node       // left sub-tree
	right   *Node       // right sub-tree
	up      *Node       // points to parent node
	key     Item        // key part for ordering
	value   interface{} // value part for data storage
	balance int8        // -1, 0, +1 (transiently ±2)
	height  int         // height of this sub-tree, leaf is 1
	size    int         // number of nodes in this sub-tree
}

// NewNode - allocate a leaf node attached below parent
//
// only the up link is set, the caller is responsible for placing the
// node in the parent's left or right slot
func NewNode(key Item, value interface{}, parent *Node) *Node {
	return &Node{
		up:      parent,
		key:     key,
		value:   value,
		balance: 0,
		height:  1,
		size:    1,
	}
}

// Release - clear a node that has been unlinked from its tree
func (p *Node) Release() {
	p.left = nil
	p.right = nil
	p.up = nil
	p.key = nil
	p.value = nil
	p.balance = 0
	p.height = 0
	p.size = 0
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Value - read the value from a node item
func (p *Node) Value() interface{} {
	return p.value
}

// SetValue - overwrite the value part of a node
func (p *Node) SetValue(value interface{}) {
	p.value = value
}

// Parent - return parent node of a node
func (p *Node) Parent() *Node {
	return p.up
}

// Left - return the left child of a node
func (p *Node) Left() *Node {
	return p.left
}

// Right - return the right child of a node
func (p *Node) Right() *Node {
	return p.right
}

// Balance - stored balance factor, height(right) - height(left)
func (p *Node) Balance() int8 {
	if nil == p {
		return 0
	}
	return p.balance
}

// SetBalance - store a new balance factor
func (p *Node) SetBalance(balance int8) {
	p.balance = balance
}

// Height - cached height of the sub-tree rooted here, zero for nil
func (p *Node) Height() int {
	if nil == p {
		return 0
	}
	return p.height
}

// Size - cached number of nodes in the sub-tree rooted here, zero for nil
func (p *Node) Size() int {
	if nil == p {
		return 0
	}
	return p.size
}

// SetLeft - set the left child link only
func (p *Node) SetLeft(child *Node) {
	p.left = child
}

// SetRight - set the right child link only
func (p *Node) SetRight(child *Node) {
	p.right = child
}

// SetParent - set the up link only
func (p *Node) SetParent(parent *Node) {
	p.up = parent
}

// Update - recompute cached height and size from the children
//
// the children must already be up to date
func (p *Node) Update() {
	hl := p.left.Height()
	hr := p.right.Height()
	if hl > hr {
		p.height = 1 + hl
	} else {
		p.height = 1 + hr
	}
	p.size = 1 + p.left.Size() + p.right.Size()
}

// Depth - get the depth of a node
func (p *Node) Depth() uint {
	count := uint(0)
	parent := p.up
	for parent != nil {
		count += 1
		parent = parent.up
	}
	return count
}

// GetChildrenByDepth - returns all children in a specific depth of a tree
func (p *Node) GetChildrenByDepth(depth uint) []*Node {
	nodes := []*Node{}

	if depth == 0 {
		nodes = []*Node{p}
	} else {
		left := p.left
		right := p.right
		if left != nil {
			nodes = append(nodes, left.GetChildrenByDepth(depth-1)...)
		}

		if right != nil {
			nodes = append(nodes, right.GetChildrenByDepth(depth-1)...)
		}
	}
	return nodes
}
