// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = InvalidError("already initialised")
	ErrCountMismatch        = ProcessError("element count does not match node count")
	ErrEmptyContainer       = InvalidError("container is empty")
	ErrHeightMismatch       = ProcessError("node height is inconsistent")
	ErrInvalidCount         = InvalidError("count must be positive")
	ErrInvalidInterval      = InvalidError("interval must be positive")
	ErrInvalidKey           = InvalidError("key is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrOutOfOrder           = ProcessError("keys are out of order")
	ErrUnbalanced           = ProcessError("subtree heights differ by more than one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, also looks through wrapped errors
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
