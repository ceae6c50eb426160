// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package util - small file system helpers shared by the commands
package util

import (
	"os"
	"path/filepath"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - make a directory and its parents if they do not
// already exist, fails if the path exists and is not a directory
func EnsureDirectory(name string) error {
	if err := os.MkdirAll(name, 0700); nil != err {
		return err
	}
	info, err := os.Stat(name)
	if nil != err {
		return err
	}
	if !info.IsDir() {
		return &os.PathError{Op: "mkdir", Path: name, Err: os.ErrExist}
	}
	return nil
}
