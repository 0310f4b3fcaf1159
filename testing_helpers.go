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
	"sync"
	"time"
)

// MockTransport is an in-memory Transport for tests: it records every sent
// frame and serves received frames from a scripted queue. An empty queue
// behaves like silence on the wire, returning a timeout.
type MockTransport struct {
	// SendFunc, if set, is consulted for every SendFrame before the frame
	// is recorded; returning an error simulates a send failure.
	SendFunc func(buf []byte) error
	// ReceiveFunc, if set, overrides the scripted queue.
	ReceiveFunc func(timeout time.Duration) ([]byte, error)

	mu        sync.Mutex
	sent      [][]byte
	queue     [][]byte
	localAddr LinkAddress
	closed    bool
}

// NewMockTransport creates a mock transport with a locally administered
// hardware address.
func NewMockTransport() *MockTransport {
	return &MockTransport{
		localAddr: LinkAddress{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
	}
}

// SendFrame records the frame, or fails if SendFunc says so.
func (m *MockTransport) SendFrame(buf []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrTransportClosed
	}
	if m.SendFunc != nil {
		if err := m.SendFunc(buf); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, append([]byte(nil), buf...))
	return nil
}

// ReceiveFrame pops the next scripted frame, or times out on an empty queue.
func (m *MockTransport) ReceiveFrame(timeout time.Duration) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrTransportClosed
	}
	if m.ReceiveFunc != nil {
		return m.ReceiveFunc(timeout)
	}
	if len(m.queue) == 0 {
		return nil, NewTimeoutError("ReceiveFrame", "mock")
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	return next, nil
}

// QueueFrame appends a frame to the scripted receive queue.
func (m *MockTransport) QueueFrame(buf []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, append([]byte(nil), buf...))
}

// SentFrames returns a copy of every frame sent so far, in order.
func (m *MockTransport) SentFrames() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.sent))
	for i, f := range m.sent {
		out[i] = append([]byte(nil), f...)
	}
	return out
}

// LocalAddr returns the mock's hardware address.
func (m *MockTransport) LocalAddr() LinkAddress {
	return m.localAddr
}

// Close marks the transport closed; later sends and receives fail.
func (m *MockTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// IsConnected returns true until Close is called.
func (m *MockTransport) IsConnected() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.closed
}

// Type returns TransportMock.
func (*MockTransport) Type() TransportType {
	return TransportMock
}
