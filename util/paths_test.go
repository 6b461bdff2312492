// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlbst/fault"
	"github.com/bitmark-inc/avlbst/util"
)

func TestEnsureAbsolute(t *testing.T) {
	testItems := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/var/lib", "log", "/var/lib/log"},
		{"/var/lib", "log/../data", "/var/lib/data"},
		{"/var/lib", "/tmp/log", "/tmp/log"},
		{"/var/lib/", "./x.log", "/var/lib/x.log"},
	}

	for i, item := range testItems {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: %q + %q", i, item.directory, item.path)
	}
}

func TestEnsureFileAndDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "paths")
	if !assert.Nil(t, err, "temp dir") {
		return
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "file.txt")
	assert.False(t, util.EnsureFileExists(fileName), "file before write")
	assert.Nil(t, ioutil.WriteFile(fileName, []byte("x"), 0600), "write")
	assert.True(t, util.EnsureFileExists(fileName), "file after write")
	assert.False(t, util.EnsureFileExists(dir), "directory is not a file")

	sub := filepath.Join(dir, "a", "b")
	assert.Nil(t, util.EnsureDirectory(sub), "create directory")
	assert.Nil(t, util.EnsureDirectory(sub), "existing directory")
	assert.Equal(t, fault.ErrNotADirectory, util.EnsureDirectory(fileName), "file as directory")
}

func TestPlainFileName(t *testing.T) {
	assert.Nil(t, util.PlainFileName("avltree.log"), "plain")
	assert.Equal(t, fault.ErrNotAFile, util.PlainFileName("log/avltree.log"), "relative path")
	assert.Equal(t, fault.ErrNotAFile, util.PlainFileName("/tmp/avltree.log"), "absolute path")
	assert.Equal(t, fault.ErrNotAFile, util.PlainFileName(""), "empty")
}
