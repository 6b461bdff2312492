// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlbst/avl"
)

const (
	rotationLoggerPrefix = "rotation"
)

// rotationTracer - report each rebalancing to a log channel
type rotationTracer struct {
	log   *logger.L
	count map[avl.Case]int
}

func newRotationTracer(log *logger.L) *rotationTracer {
	return &rotationTracer{
		log:   log,
		count: make(map[avl.Case]int),
	}
}

// Rebalanced - called by the tree before each rotation case is applied
func (t *rotationTracer) Rebalanced(c avl.Case, key avl.Item) {
	t.count[c] += 1
	t.log.Debugf("%s rotation at: %v", c, key)
}

// total of all cases seen so far
func (t *rotationTracer) total() int {
	n := 0
	for _, c := range t.count {
		n += c
	}
	return n
}
