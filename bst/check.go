// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// CheckUp - check the up pointers for consistency
func (tree *Tree) CheckUp() bool {
	if nil != tree.root && nil != tree.root.up {
		return false
	}
	return checkup(tree.root, nil)
}

// internal: consistency checker
func checkup(p *Node, up *Node) bool {
	if nil == p {
		return true
	}
	if p.up != up {
		return false
	}
	if !checkup(p.left, p) {
		return false
	}
	return checkup(p.right, p)
}

// CheckOrder - check that keys strictly increase in an in-order walk
func (tree *Tree) CheckOrder() bool {
	p := tree.First()
	if nil == p {
		return true
	}
	for q := p.Next(); nil != q; q = q.Next() {
		if p.key.Compare(q.key) >= 0 {
			return false
		}
		p = q
	}
	return true
}

// CheckCounts - check the cached heights and sizes of every node
func (tree *Tree) CheckCounts() bool {
	_, _, ok := checkCounts(tree.root)
	return ok
}

// internal: returns the recomputed height and size of a sub-tree
func checkCounts(p *Node) (int, int, bool) {
	if nil == p {
		return 0, 0, true
	}
	hl, sl, ok := checkCounts(p.left)
	if !ok {
		return 0, 0, false
	}
	hr, sr, ok := checkCounts(p.right)
	if !ok {
		return 0, 0, false
	}
	h := 1 + hl
	if hr > hl {
		h = 1 + hr
	}
	s := 1 + sl + sr
	if h != p.height || s != p.size {
		return h, s, false
	}
	return h, s, true
}
