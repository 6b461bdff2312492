// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// NodeSwap - exchange the positions of two nodes in the tree
//
// the nodes keep their own key and value but take over each other's
// parent, children and place as root.  Cached height and size belong
// to the position and are exchanged as well; the balance field is
// left alone.
func (tree *Tree) NodeSwap(n1 *Node, n2 *Node) {
	if nil == n1 || nil == n2 || n1 == n2 {
		return
	}

	p1, l1, r1 := n1.up, n1.left, n1.right
	p2, l2, r2 := n2.up, n2.left, n2.right
	n1IsLeft := nil != p1 && p1.left == n1
	n2IsLeft := nil != p2 && p2.left == n2

	n1.up, n1.left, n1.right = p2, l2, r2
	n2.up, n2.left, n2.right = p1, l1, r1

	// adjacent nodes would now point at themselves
	if r1 == n2 {
		n2.right = n1
		n1.up = n2
	} else if l1 == n2 {
		n2.left = n1
		n1.up = n2
	}
	if r2 == n1 {
		n1.right = n2
		n2.up = n1
	} else if l2 == n1 {
		n1.left = n2
		n2.up = n1
	}

	// the parents' child links
	if nil != p1 && p1 != n2 {
		if n1IsLeft {
			p1.left = n2
		} else {
			p1.right = n2
		}
	}
	if nil != p2 && p2 != n1 {
		if n2IsLeft {
			p2.left = n1
		} else {
			p2.right = n1
		}
	}

	// the children's up links
	for _, p := range []*Node{n1, n2} {
		if nil != p.left {
			p.left.up = p
		}
		if nil != p.right {
			p.right.up = p
		}
	}

	if tree.root == n1 {
		tree.root = n2
	} else if tree.root == n2 {
		tree.root = n1
	}

	n1.height, n2.height = n2.height, n1.height
	n1.size, n2.size = n2.size, n1.size
}
