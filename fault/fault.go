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
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrBalanceMismatch      = InvalidError("stored balance differs from sub-tree heights")
	ErrCountMismatch        = InvalidError("cached height or size differs from sub-tree")
	ErrInconsistentLinks    = InvalidError("parent and child links are inconsistent")
	ErrInvalidCommand       = InvalidError("invalid command")
	ErrInvalidDataDirectory = InvalidError("data directory is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidOperation     = InvalidError("invalid script operation")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMissingArgument      = InvalidError("missing argument")
	ErrNotADirectory        = InvalidError("path is not a directory")
	ErrNotAFile             = InvalidError("file name must not contain a path")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrOutOfBalance         = InvalidError("balance factor is outside -1..+1")
	ErrOutOfOrder           = InvalidError("keys are out of order")
	ErrScriptReadFailed     = ProcessError("script read failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
