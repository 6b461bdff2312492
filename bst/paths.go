// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// EqualPaths - true if every leaf below root is at the same depth
//
// an empty tree trivially has equal paths
func EqualPaths(root *Node) bool {
	if nil == root {
		return true
	}
	leafDepth := -1
	return pathDepth(root, 0, &leafDepth)
}

// internal: the first leaf found sets the depth the others must match
func pathDepth(p *Node, depth int, leafDepth *int) bool {
	if nil == p.left && nil == p.right {
		if *leafDepth < 0 {
			*leafDepth = depth
			return true
		}
		return depth == *leafDepth
	}
	if nil != p.left && !pathDepth(p.left, depth+1, leafDepth) {
		return false
	}
	if nil != p.right && !pathDepth(p.right, depth+1, leafDepth) {
		return false
	}
	return true
}
