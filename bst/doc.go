// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - a plain (unbalanced) binary search tree with parent
// pointers to allow iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height and node count of its sub-tree so
// that balancing layers (see package avl) can compute balance
// factors and index positions without walking the tree.  The
// balance field is carried by every node but this package never
// changes it, so for a plain tree it stays at zero.
//
// The link mutators (SetLeft, SetRight, SetParent, Relink, SetRoot,
// Update) are intended for balancing layers built on top of this
// package; callers using them must keep parent and child links
// mutually consistent.
package bst
