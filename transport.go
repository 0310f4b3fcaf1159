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
	"context"
	"fmt"
	"time"
)

// LinkAddress is a 6-byte hardware address identifying an interface or a
// receiver card at the link layer.
type LinkAddress [6]byte

// Broadcast is the all-ones link address, the destination for detection
// queries and the fallback before a card has been detected.
var Broadcast = LinkAddress{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

func (a LinkAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", a[0], a[1], a[2], a[3], a[4], a[5])
}

// Transport defines the raw link-layer channel to a receiver card. It
// carries whole Ethernet frames and has no protocol knowledge.
//
// Implementations are not required to be safe for concurrent use; callers
// needing concurrency must serialize access externally.
type Transport interface {
	// SendFrame transmits one whole frame.
	SendFrame(buf []byte) error

	// ReceiveFrame blocks until a frame arrives or timeout elapses. On
	// expiry it returns an error matching ErrTimeout, never a zero-length
	// success. A non-positive timeout is replaced with a finite default.
	ReceiveFrame(timeout time.Duration) ([]byte, error)

	// LocalAddr returns the bound interface's hardware address.
	LocalAddr() LinkAddress

	// Close releases the underlying handle. Safe to call more than once.
	Close() error

	// IsConnected returns true while the handle is live.
	IsConnected() bool

	// Type returns the transport type.
	Type() TransportType
}

// TransportType represents the kind of link transport.
type TransportType string

const (
	// TransportEthernet is a raw AF_PACKET Ethernet transport.
	TransportEthernet TransportType = "ethernet"
	// TransportMock is an in-memory transport for testing.
	TransportMock TransportType = "mock"
)

// TransportWithRetry wraps a Transport with retry on send. It is an opt-in
// layer above the protocol core: nothing in this package constructs one on
// its own, so callers that never ask for it get the protocol's native
// no-retry behavior.
type TransportWithRetry struct {
	transport Transport
	config    *RetryConfig
}

// NewTransportWithRetry creates a new transport wrapper with retry logic.
func NewTransportWithRetry(transport Transport, config *RetryConfig) *TransportWithRetry {
	if config == nil {
		config = DefaultRetryConfig()
	}
	return &TransportWithRetry{
		transport: transport,
		config:    config,
	}
}

// SendFrame transmits a frame, retrying transient transport failures.
func (t *TransportWithRetry) SendFrame(buf []byte) error {
	return RetryWithConfig(context.Background(), t.config, func() error {
		return t.transport.SendFrame(buf)
	})
}

// ReceiveFrame is passed through without retry: the timeout is the caller's
// bound, and repeating a receive would silently stretch it.
func (t *TransportWithRetry) ReceiveFrame(timeout time.Duration) ([]byte, error) {
	return t.transport.ReceiveFrame(timeout)
}

// LocalAddr returns the bound interface's hardware address.
func (t *TransportWithRetry) LocalAddr() LinkAddress {
	return t.transport.LocalAddr()
}

// Close closes the underlying transport.
func (t *TransportWithRetry) Close() error {
	if err := t.transport.Close(); err != nil {
		return fmt.Errorf("failed to close underlying transport: %w", err)
	}
	return nil
}

// IsConnected returns true if the underlying transport is connected.
func (t *TransportWithRetry) IsConnected() bool {
	return t.transport.IsConnected()
}

// Type returns the underlying transport type.
func (t *TransportWithRetry) Type() TransportType {
	return t.transport.Type()
}

// SetRetryConfig updates the retry configuration.
func (t *TransportWithRetry) SetRetryConfig(config *RetryConfig) {
	t.config = config
}
