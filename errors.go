// go-colorlight
// Copyright (c) 2026 The PixelGrid Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-colorlight.
//
// go-colorlight is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-colorlight is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-colorlight; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package colorlight

import (
	"errors"
	"fmt"

	"github.com/PixelGridProject/go-colorlight/internal/frame"
)

// Sentinel errors. Every public operation fails with exactly one of these
// (possibly wrapped); nothing is swallowed or logged internally.
var (
	// ErrInterfaceNotFound means the named network interface does not exist.
	ErrInterfaceNotFound = errors.New("network interface not found")
	// ErrPermissionDenied means the process lacks the capability for raw
	// link-layer sockets (CAP_NET_RAW on Linux).
	ErrPermissionDenied = errors.New("raw socket permission denied")
	// ErrTimeout means no matching frame arrived within the bound.
	ErrTimeout = errors.New("operation timeout")
	// ErrMalformedFrame means a received frame failed shape or integrity
	// checks. It matches every decode error from the frame codec.
	ErrMalformedFrame = frame.ErrMalformed
	// ErrInvalidRowData means a row buffer was empty or not a whole number
	// of BGR pixels.
	ErrInvalidRowData = errors.New("invalid row data")
	// ErrTransportRead means the underlying receive failed for OS-level
	// reasons unrelated to protocol content.
	ErrTransportRead = errors.New("transport read failed")
	// ErrTransportWrite means the underlying send failed.
	ErrTransportWrite = errors.New("transport write failed")
	// ErrTransportClosed means the transport handle was already released.
	ErrTransportClosed = errors.New("transport closed")
	// ErrNotSupported means raw Ethernet transports are unavailable on
	// this platform.
	ErrNotSupported = errors.New("not supported on this platform")
)

// ErrorType classifies transport errors for retry decisions.
type ErrorType int

const (
	// ErrorTypePermanent indicates retrying cannot help (bad interface,
	// missing capability, closed handle).
	ErrorTypePermanent ErrorType = iota
	// ErrorTypeTransient indicates the operation may succeed if repeated.
	ErrorTypeTransient
	// ErrorTypeTimeout indicates the bound elapsed with no result.
	ErrorTypeTimeout
)

// TransportError wraps a failure of the link transport with enough context
// to decide whether a retry layer should repeat the operation.
type TransportError struct {
	Err       error
	Op        string
	Iface     string
	Type      ErrorType
	Retryable bool
}

func (e *TransportError) Error() string {
	if e.Iface != "" {
		return fmt.Sprintf("transport %s on %s: %v", e.Op, e.Iface, e.Err)
	}
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// NewTransportError creates a TransportError with retryability derived from
// the error type.
func NewTransportError(op, iface string, err error, errType ErrorType) *TransportError {
	return &TransportError{
		Err:       err,
		Op:        op,
		Iface:     iface,
		Type:      errType,
		Retryable: errType == ErrorTypeTransient || errType == ErrorTypeTimeout,
	}
}

// NewTimeoutError creates a TransportError for an elapsed receive bound.
func NewTimeoutError(op, iface string) *TransportError {
	return &TransportError{
		Err:       ErrTimeout,
		Op:        op,
		Iface:     iface,
		Type:      ErrorTypeTimeout,
		Retryable: true,
	}
}

// IsRetryable reports whether err is worth repeating. Only transport-level
// failures and timeouts qualify; protocol and input errors never do.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Retryable
	}
	switch {
	case errors.Is(err, ErrTimeout),
		errors.Is(err, ErrTransportRead),
		errors.Is(err, ErrTransportWrite):
		return true
	default:
		return false
	}
}

// GetErrorType classifies err for callers implementing their own policy.
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ErrorTypePermanent
	}
	var te *TransportError
	if errors.As(err, &te) {
		return te.Type
	}
	switch {
	case errors.Is(err, ErrTimeout):
		return ErrorTypeTimeout
	case errors.Is(err, ErrTransportRead), errors.Is(err, ErrTransportWrite):
		return ErrorTypeTransient
	default:
		return ErrorTypePermanent
	}
}
