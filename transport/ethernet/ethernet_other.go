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

//go:build !linux

package ethernet

import (
	"fmt"
	"runtime"
	"time"

	colorlight "github.com/PixelGridProject/go-colorlight"
)

// Transport is unavailable outside Linux; only AF_PACKET sockets are
// implemented.
type Transport struct{}

// New always fails on this platform.
func New(interfaceName string) (*Transport, error) {
	return nil, fmt.Errorf("raw Ethernet transport on %s: %w", runtime.GOOS, colorlight.ErrNotSupported)
}

// SendFrame always fails on this platform.
func (*Transport) SendFrame([]byte) error {
	return colorlight.ErrNotSupported
}

// ReceiveFrame always fails on this platform.
func (*Transport) ReceiveFrame(time.Duration) ([]byte, error) {
	return nil, colorlight.ErrNotSupported
}

// LocalAddr returns the zero address.
func (*Transport) LocalAddr() colorlight.LinkAddress {
	return colorlight.LinkAddress{}
}

// Close is a no-op.
func (*Transport) Close() error {
	return nil
}

// IsConnected always returns false.
func (*Transport) IsConnected() bool {
	return false
}

// Type returns TransportEthernet.
func (*Transport) Type() colorlight.TransportType {
	return colorlight.TransportEthernet
}
