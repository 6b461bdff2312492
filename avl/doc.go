// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree built on the plain binary
// search tree of package bst, with parent pointers to allow
// iteration through the nodes
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Every node stores balance = height(right) - height(left).  After
// each insert or remove the tree is restored to |balance| <= 1 at
// every node by single or double rotations.  An insert needs at most
// one rotation case, a remove may need one at every level up to the
// root.
//
// This version allows for data associated with key, which can be
// overwritten by an insert with the same key.  Also remove does not
// copy data between nodes, a node with two children changes places
// with its predecessor before being unlinked, so nodes held by the
// caller keep their key and value until they themselves are removed.
package avl
