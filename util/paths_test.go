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

	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/data", "log", "/data/log"},
		{"/data", "/var/log", "/var/log"},
		{"/data/", "./x/../y", "/data/y"},
		{"/data", "", "/data"},
	}
	for i, item := range tests {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: path", i)
	}
}

func TestEnsureFileAndDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	assert.Nil(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	assert.True(t, util.EnsureFileExists(dir), "directory exists")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "none")), "missing file exists")

	nested := filepath.Join(dir, "a", "b")
	assert.Nil(t, util.EnsureDirectory(nested), "create nested")
	assert.Nil(t, util.EnsureDirectory(nested), "create again")
	assert.True(t, util.EnsureFileExists(nested), "nested missing")

	file := filepath.Join(dir, "file")
	err = ioutil.WriteFile(file, []byte("x"), 0600)
	assert.Nil(t, err, "write file")
	assert.NotNil(t, util.EnsureDirectory(file), "file is not a directory")
}
