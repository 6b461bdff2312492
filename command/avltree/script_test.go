// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbst/fault"
)

const testScript = `
operations:
  - op: insert
    key: apple
    value: red
  - op: insert
    key: banana
    value: yellow
  - op: insert
    key: cherry
    value: dark red
  - op: remove
    key: banana
  - op: find
    key: cherry
  - op: check
`

func TestReadScript(t *testing.T) {
	operations, err := readScript(strings.NewReader(testScript))
	assert.Nil(t, err, "read error")
	if !assert.Equal(t, 6, len(operations), "operation count") {
		return
	}
	assert.Equal(t, operation{Op: "insert", Key: "cherry", Value: "dark red"}, operations[2], "third operation")
	assert.Equal(t, operation{Op: "check"}, operations[5], "last operation")
}

func TestReadEmptyScript(t *testing.T) {
	operations, err := readScript(strings.NewReader(""))
	assert.Nil(t, err, "read error")
	assert.Equal(t, 0, len(operations), "operation count")
}

func TestReadBadScript(t *testing.T) {
	_, err := readScript(strings.NewReader("operations: [ {op: insert"))
	assert.True(t, errors.Is(err, fault.ErrScriptReadFailed), "error: %v", err)
	assert.True(t, fault.IsErrProcess(err), "class")

	_, err = loadScript(filepath.Join(testLogDirectory, "no-such-script.yaml"))
	assert.True(t, errors.Is(err, fault.ErrScriptReadFailed), "missing file error: %v", err)
}

func TestRunScript(t *testing.T) {
	fileName := filepath.Join(testLogDirectory, "script.yaml")
	err := ioutil.WriteFile(fileName, []byte(testScript), 0600)
	if !assert.Nil(t, err, "write script") {
		return
	}
	defer os.Remove(fileName)

	operations, err := loadScript(fileName)
	assert.Nil(t, err, "load error")

	p, buffer := newTestProcessor()
	err = p.runScript(operations)
	assert.Nil(t, err, "run error")
	assert.Equal(t, 2, p.tree.Count(), "tree count")
	assert.Contains(t, buffer.String(), "remove: \"banana\" → \"yellow\"\n", "remove output")
	assert.Contains(t, buffer.String(), "find: \"cherry\" → \"dark red\" [1]\n", "find output")
	assert.Contains(t, buffer.String(), "check: ok  count: 2  height: 2\n", "check output")

	// command line follows on from the script
	buffer.Reset()
	err = p.run(strings.Fields("find apple"))
	assert.Nil(t, err, "run error")
	assert.Equal(t, "find: \"apple\" → \"red\" [0]\n", buffer.String(), "find after script")
}

func TestRunScriptErrors(t *testing.T) {
	testItems := []struct {
		operations []operation
		err        error
	}{
		{[]operation{{Op: "delete", Key: "a"}}, fault.ErrInvalidOperation},
		{[]operation{{Op: "insert", Value: "v"}}, fault.ErrMissingArgument},
		{[]operation{{Op: "count"}, {Op: "remove"}}, fault.ErrMissingArgument},
	}

	for i, item := range testItems {
		p, _ := newTestProcessor()
		err := p.runScript(item.operations)
		assert.True(t, errors.Is(err, item.err), "%d: error: %v", i, err)
	}

	// an empty value is allowed
	p, _ := newTestProcessor()
	err := p.runScript([]operation{{Op: "insert", Key: "k"}})
	assert.Nil(t, err, "empty value")
	value, err := p.tree.Lookup(stringItem("k"))
	assert.Nil(t, err, "lookup")
	assert.Equal(t, "", value, "stored value")
}
