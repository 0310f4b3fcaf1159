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

//go:build linux

package ethernet

import (
	"errors"
	"fmt"
	"net"
	"time"

	colorlight "github.com/PixelGridProject/go-colorlight"
	"golang.org/x/sys/unix"
)

const (
	// readBufferSize fits any Ethernet frame up to the conventional MTU.
	readBufferSize = 2048

	// defaultReceiveTimeout replaces non-positive timeouts so a receive
	// can never hang unbounded.
	defaultReceiveTimeout = 1 * time.Second
)

// Transport implements the colorlight.Transport interface over an
// AF_PACKET raw socket bound to one network interface.
//
// Opening one requires CAP_NET_RAW (or root) on Linux.
type Transport struct {
	ifaceName string
	fd        int
	localAddr colorlight.LinkAddress
	closed    bool
}

// New opens a raw link-layer socket bound to the named interface.
func New(interfaceName string) (*Transport, error) {
	ifi, err := net.InterfaceByName(interfaceName)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", interfaceName, colorlight.ErrInterfaceNotFound)
	}

	proto := htons(unix.ETH_P_ALL)
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW, int(proto))
	if err != nil {
		if errors.Is(err, unix.EPERM) || errors.Is(err, unix.EACCES) {
			return nil, fmt.Errorf("open %q: %w", interfaceName, colorlight.ErrPermissionDenied)
		}
		return nil, colorlight.NewTransportError("open", interfaceName, err, colorlight.ErrorTypePermanent)
	}

	sll := &unix.SockaddrLinklayer{
		Protocol: proto,
		Ifindex:  ifi.Index,
	}
	if err := unix.Bind(fd, sll); err != nil {
		_ = unix.Close(fd)
		return nil, colorlight.NewTransportError("bind", interfaceName, err, colorlight.ErrorTypePermanent)
	}

	var addr colorlight.LinkAddress
	copy(addr[:], ifi.HardwareAddr)

	return &Transport{
		ifaceName: interfaceName,
		fd:        fd,
		localAddr: addr,
	}, nil
}

// SendFrame transmits one whole Ethernet frame.
func (t *Transport) SendFrame(buf []byte) error {
	if t.closed {
		return colorlight.ErrTransportClosed
	}
	if _, err := unix.Write(t.fd, buf); err != nil {
		return colorlight.NewTransportError("write", t.ifaceName,
			fmt.Errorf("%w: %w", colorlight.ErrTransportWrite, err), colorlight.ErrorTypeTransient)
	}
	return nil
}

// ReceiveFrame blocks until a frame arrives or timeout elapses. Expiry is
// reported as a timeout error, never as an empty frame.
func (t *Transport) ReceiveFrame(timeout time.Duration) ([]byte, error) {
	if t.closed {
		return nil, colorlight.ErrTransportClosed
	}
	if timeout <= 0 {
		timeout = defaultReceiveTimeout
	}

	tv := unix.NsecToTimeval(timeout.Nanoseconds())
	if err := unix.SetsockoptTimeval(t.fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &tv); err != nil {
		return nil, colorlight.NewTransportError("set timeout", t.ifaceName, err, colorlight.ErrorTypePermanent)
	}

	buf := make([]byte, readBufferSize)
	n, err := unix.Read(t.fd, buf)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
			return nil, colorlight.NewTimeoutError("read", t.ifaceName)
		}
		return nil, colorlight.NewTransportError("read", t.ifaceName,
			fmt.Errorf("%w: %w", colorlight.ErrTransportRead, err), colorlight.ErrorTypeTransient)
	}
	return buf[:n], nil
}

// LocalAddr returns the bound interface's hardware address.
func (t *Transport) LocalAddr() colorlight.LinkAddress {
	return t.localAddr
}

// Close releases the socket. Safe to call more than once.
func (t *Transport) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if err := unix.Close(t.fd); err != nil {
		return colorlight.NewTransportError("close", t.ifaceName, err, colorlight.ErrorTypePermanent)
	}
	return nil
}

// IsConnected returns true while the socket is open.
func (t *Transport) IsConnected() bool {
	return !t.closed
}

// Type returns TransportEthernet.
func (*Transport) Type() colorlight.TransportType {
	return colorlight.TransportEthernet
}

// htons converts a short to network byte order for AF_PACKET addressing.
func htons(v uint16) uint16 {
	return v<<8 | v>>8
}
