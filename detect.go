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
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/PixelGridProject/go-colorlight/internal/frame"
)

// ReceiverInfo identifies a detected receiver card. It is parsed once per
// successful detection and never mutated afterwards.
type ReceiverInfo struct {
	// Addr is the card's link address, taken from the reply's source field.
	Addr LinkAddress
	// Model is the card series byte (0x5A on the 5A-75).
	Model byte
	// VersionMajor and VersionMinor are the firmware version.
	VersionMajor byte
	VersionMinor byte
	// PixelColumns and PixelRows are the panel dimensions the card is
	// configured for.
	PixelColumns uint16
	PixelRows    uint16
}

func (r *ReceiverInfo) String() string {
	return fmt.Sprintf("receiver %02X v%d.%d at %s, %dx%d",
		r.Model, r.VersionMajor, r.VersionMinor, r.Addr, r.PixelColumns, r.PixelRows)
}

// DetectReceiver broadcasts a detection query and waits for the card's
// reply, bounded by the session's configured timeout.
func (c *Card) DetectReceiver() (*ReceiverInfo, error) {
	return c.DetectReceiverTimeout(c.config.Timeout)
}

// DetectReceiverTimeout is DetectReceiver with an explicit bound. Exactly
// one query frame is sent per call; there is no internal retry. Frames that
// are not a detection reply are discarded until the bound elapses. On
// success the card's address becomes the destination of all later frames in
// this session, and an acknowledge frame is sent back to the card.
func (c *Card) DetectReceiverTimeout(timeout time.Duration) (*ReceiverInfo, error) {
	if timeout <= 0 {
		timeout = DefaultCardConfig().Timeout
	}
	src := c.transport.LocalAddr()

	query := frame.Encode(frame.Header{
		Dst:       frame.Broadcast,
		Src:       src,
		EtherType: frame.EtherTypeDetectRequest,
	}, make([]byte, frame.DetectPayloadLen))
	if err := c.transport.SendFrame(query); err != nil {
		return nil, fmt.Errorf("detect query: %w", err)
	}

	deadline := time.Now().Add(timeout)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil, fmt.Errorf("no detect reply within %v: %w", timeout, ErrTimeout)
		}

		raw, err := c.transport.ReceiveFrame(remaining)
		if errors.Is(err, ErrTimeout) {
			return nil, fmt.Errorf("no detect reply within %v: %w", timeout, ErrTimeout)
		}
		if err != nil {
			return nil, fmt.Errorf("detect receive: %w", err)
		}

		h, payload, err := frame.Decode(raw)
		if err != nil {
			// Unrelated traffic on the wire (ARP, IP, ...); keep waiting.
			continue
		}
		if h.EtherType != frame.EtherTypeDetectReply {
			debugf("discarding frame 0x%04X from %s while waiting for detect reply",
				h.EtherType, LinkAddress(h.Src))
			continue
		}

		info, err := parseDetectReply(payload)
		if err != nil {
			return nil, err
		}
		info.Addr = LinkAddress(h.Src)
		c.cardAddr = &info.Addr

		if err := c.sendDetectAck(src, h.Src); err != nil {
			return nil, fmt.Errorf("detect acknowledge: %w", err)
		}
		return info, nil
	}
}

// parseDetectReply interprets a detection reply payload. A short payload is
// malformed, never padded into a zero-valued ReceiverInfo.
func parseDetectReply(payload []byte) (*ReceiverInfo, error) {
	if len(payload) < frame.DetectReplyMinLen {
		return nil, fmt.Errorf("detect reply payload %d bytes, need %d: %w",
			len(payload), frame.DetectReplyMinLen, ErrMalformedFrame)
	}
	return &ReceiverInfo{
		Model:        payload[frame.DetectReplyModelOffset],
		VersionMajor: payload[frame.DetectReplyVersionMajorOffset],
		VersionMinor: payload[frame.DetectReplyVersionMinorOffset],
		PixelColumns: binary.BigEndian.Uint16(payload[frame.DetectReplyColumnsOffset:]),
		PixelRows:    binary.BigEndian.Uint16(payload[frame.DetectReplyRowsOffset:]),
	}, nil
}

// sendDetectAck completes the handshake: the same frame shape as the query,
// unicast to the card, with the acknowledge flag set.
func (c *Card) sendDetectAck(src LinkAddress, dst [6]byte) error {
	payload := make([]byte, frame.DetectPayloadLen)
	payload[frame.DetectAckFlagOffset] = 1
	ack := frame.Encode(frame.Header{
		Dst:       dst,
		Src:       src,
		EtherType: frame.EtherTypeDetectRequest,
	}, payload)
	return c.transport.SendFrame(ack)
}
