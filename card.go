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
	"time"

	"github.com/PixelGridProject/go-colorlight/internal/frame"
)

// CardConfig contains configuration options for the Card session.
type CardConfig struct {
	// RetryConfig, if set via WithRetryConfig, wraps the transport's send
	// path with retries. Nil means no retries anywhere.
	RetryConfig *RetryConfig
	// Timeout is the default detection receive bound.
	Timeout time.Duration
}

// DefaultCardConfig returns the default session configuration.
func DefaultCardConfig() *CardConfig {
	return &CardConfig{
		Timeout: 1 * time.Second,
	}
}

// Card is a session with one Colorlight 5A-75 receiver card over one link
// transport. Every frame it sends is addressed to the broadcast address
// until DetectReceiver learns the card's own address.
//
// Thread Safety: Card is NOT thread-safe. All methods must be called from a
// single goroutine or protected with external synchronization; the protocol
// has no multiplexing or request/response correlation that would make
// interleaved calls meaningful.
type Card struct {
	transport Transport
	config    *CardConfig
	cardAddr  *LinkAddress
}

// New creates a Card session owning the given transport. The transport must
// not be shared with another session.
func New(transport Transport, opts ...Option) (*Card, error) {
	if transport == nil {
		return nil, errors.New("transport must not be nil")
	}
	card := &Card{
		transport: transport,
		config:    DefaultCardConfig(),
	}
	for _, opt := range opts {
		if err := opt(card); err != nil {
			return nil, err
		}
	}
	return card, nil
}

// ReceiverAddr returns the detected card's link address, and whether a
// detection has succeeded in this session.
func (c *Card) ReceiverAddr() (LinkAddress, bool) {
	if c.cardAddr == nil {
		return LinkAddress{}, false
	}
	return *c.cardAddr, true
}

// Close releases the session's transport. Mandatory cleanup on every exit
// path; safe to call more than once.
func (c *Card) Close() error {
	return c.transport.Close()
}

// destination returns the card's learned address, or broadcast before any
// detection has succeeded.
func (c *Card) destination() [6]byte {
	if c.cardAddr != nil {
		return *c.cardAddr
	}
	return frame.Broadcast
}

// header builds a frame header from the session's current addressing.
func (c *Card) header(etherType uint16) frame.Header {
	return frame.Header{
		Dst:       c.destination(),
		Src:       c.transport.LocalAddr(),
		EtherType: etherType,
	}
}
