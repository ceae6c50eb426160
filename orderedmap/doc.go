// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package orderedmap - a map of unique keys to values kept in
// ascending key order by an AVL tree
//
// Inserting an existing key overwrites its value.  Index behaves like
// an access-or-insert subscript:
//
//   m := orderedmap.New[int, int]()
//   *m.Index(5) = 200
//   *m.Index(9) += *m.Index(7)
//
// At reports fault.ErrKeyNotFound for a missing key and GetOrDefault
// returns the zero value without modifying the map.  A map is not
// thread safe.
package orderedmap
