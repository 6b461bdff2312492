// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strings"
)

// stringItem - tree key ordered by byte-wise string comparison
type stringItem string

// Compare - compare with another stringItem
func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(stringItem)))
}

// String - for printing
func (s stringItem) String() string {
	return string(s)
}
