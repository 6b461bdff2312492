// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bitmark-inc/avlbst/fault"
)

// operation - one step of a script
type operation struct {
	Op    string `yaml:"op"`
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// script - the top level of a YAML script document
//
//   operations:
//     - op: insert
//       key: k1
//       value: v1
//     - op: remove
//       key: k1
type script struct {
	Operations []operation `yaml:"operations"`
}

// read a script file
func loadScript(fileName string) ([]operation, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrScriptReadFailed, err)
	}
	defer f.Close()

	return readScript(f)
}

// decode a script, an empty document has no operations
func readScript(r io.Reader) ([]operation, error) {
	s := script{}
	err := yaml.NewDecoder(r).Decode(&s)
	if io.EOF == err {
		return []operation{}, nil
	}
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrScriptReadFailed, err)
	}
	return s.Operations, nil
}

// arguments in command line order, up to the number the command needs
func (op operation) arguments(n int) []string {
	a := make([]string, 0, 2)
	if n >= 1 && "" != op.Key {
		a = append(a, op.Key)
	}
	if n >= 2 && len(a) > 0 {
		a = append(a, op.Value)
	}
	return a
}
