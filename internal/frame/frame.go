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

package frame

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decode errors. All of them unwrap to ErrMalformed so callers can match
// the whole class with a single errors.Is.
var (
	ErrMalformed        = errors.New("malformed frame")
	ErrTooShort         = fmt.Errorf("%w: shorter than the fixed header", ErrMalformed)
	ErrUnknownEtherType = fmt.Errorf("%w: unknown EtherType", ErrMalformed)
	ErrChecksum         = fmt.Errorf("%w: checksum trailer mismatch", ErrMalformed)
)

// Header is the fixed 14-byte prefix every protocol frame starts with.
type Header struct {
	Dst       [6]byte
	Src       [6]byte
	EtherType uint16
}

// Encode serializes h followed by payload into a single wire frame.
func Encode(h Header, payload []byte) []byte {
	buf := make([]byte, HeaderLen+len(payload))
	copy(buf[0:6], h.Dst[:])
	copy(buf[6:12], h.Src[:])
	binary.BigEndian.PutUint16(buf[12:14], h.EtherType)
	copy(buf[HeaderLen:], payload)
	return buf
}

// EncodeWith serializes the frame and appends a one-byte integrity trailer
// computed over the payload with sum.
func EncodeWith(h Header, payload []byte, sum Checksum) []byte {
	buf := make([]byte, HeaderLen+len(payload)+1)
	copy(buf[0:6], h.Dst[:])
	copy(buf[6:12], h.Src[:])
	binary.BigEndian.PutUint16(buf[12:14], h.EtherType)
	copy(buf[HeaderLen:], payload)
	buf[len(buf)-1] = sum(payload)
	return buf
}

// Decode parses a raw frame into its header and payload. The returned
// payload aliases buf. A buffer shorter than the fixed header, or one whose
// EtherType is not a protocol discriminator, yields an error and a zero
// header, never a partially populated result.
func Decode(buf []byte) (Header, []byte, error) {
	if len(buf) < HeaderLen {
		return Header{}, nil, fmt.Errorf("%w: %d bytes", ErrTooShort, len(buf))
	}
	et := binary.BigEndian.Uint16(buf[12:14])
	if !KnownEtherType(et) {
		return Header{}, nil, fmt.Errorf("%w: 0x%04X", ErrUnknownEtherType, et)
	}
	var h Header
	copy(h.Dst[:], buf[0:6])
	copy(h.Src[:], buf[6:12])
	h.EtherType = et
	return h, buf[HeaderLen:], nil
}

// DecodeWith parses a frame whose payload carries a one-byte integrity
// trailer and validates it with sum. The trailer is stripped from the
// returned payload.
func DecodeWith(buf []byte, sum Checksum) (Header, []byte, error) {
	h, payload, err := Decode(buf)
	if err != nil {
		return Header{}, nil, err
	}
	if len(payload) < 1 {
		return Header{}, nil, fmt.Errorf("%w: missing trailer", ErrTooShort)
	}
	body, trailer := payload[:len(payload)-1], payload[len(payload)-1]
	if sum(body) != trailer {
		return Header{}, nil, fmt.Errorf("%w: got 0x%02X want 0x%02X", ErrChecksum, trailer, sum(body))
	}
	return h, body, nil
}
