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

// Package frame provides the raw Ethernet wire layout shared by all
// Colorlight 5A-75 message families.
package frame

// EtherType discriminators - one per message family. The values are fixed
// by the card firmware and disjoint across families.
const (
	// EtherTypeDetectRequest is the broadcast "who is there" query. The
	// same value carries the post-detection acknowledge frame.
	EtherTypeDetectRequest uint16 = 0x0700
	// EtherTypeDetectReply is the card's answer to a detect request.
	EtherTypeDetectReply uint16 = 0x0805
	// EtherTypeDisplay latches the previously streamed rows onto the
	// panel and carries brightness/color-temperature settings.
	EtherTypeDisplay uint16 = 0x0107
	// EtherTypeRowLow carries pixel data for rows 0-255.
	EtherTypeRowLow uint16 = 0x5500
	// EtherTypeRowHigh carries pixel data for rows 256-511.
	EtherTypeRowHigh uint16 = 0x5501
)

// Frame size limits
const (
	HeaderLen  = 14   // destination (6) + source (6) + EtherType (2)
	MaxPayload = 1500 // conventional Ethernet MTU; no frame exceeds HeaderLen+MaxPayload
)

// Detection family layout. Query and acknowledge frames carry a zero
// payload padded to DetectPayloadLen; the acknowledge sets a single flag
// byte. Reply payload offsets follow the 5A series firmware.
const (
	DetectPayloadLen    = 270
	DetectAckFlagOffset = 2 // acknowledge carries 0x01 here

	DetectReplyMinLen             = 24
	DetectReplyModelOffset        = 0 // 0x5A on the 5A series
	DetectReplyVersionMajorOffset = 1
	DetectReplyVersionMinorOffset = 2
	DetectReplyColumnsOffset      = 20 // uint16, big endian
	DetectReplyRowsOffset         = 22 // uint16, big endian
)

// Display family layout. The payload is a fixed 98-byte block; only the
// offsets below are meaningful, the rest stays zero.
const (
	DisplayPayloadLen       = 98
	DisplayBrightnessOffset = 21 // legacy global scale, held at full
	DisplayModeOffset       = 22
	DisplayModeValue        = 0x05
	DisplayFieldOffset      = 24 // red, green, blue, temperature in order
	DisplayFieldLen         = 4
)

// Row family layout. Each row frame starts with a 7-byte header followed
// by the chunk's BGR bytes.
const (
	RowHeaderLen = 7

	RowIndexOffset       = 0 // low byte of the row number
	RowPixelOffsetOffset = 1 // uint16, big endian, offset in pixels
	RowPixelCountOffset  = 3 // uint16, big endian
	RowFlagAOffset       = 5
	RowFlagBOffset       = 6
	RowFlagAValue        = 0x08
	RowFlagBValue        = 0x88
)

// MaxRowChunk is the per-frame budget for row pixel bytes. It is rounded
// down to a multiple of 3 so chunk boundaries always fall on whole BGR
// pixels and the header's pixel offset/count fields derive exactly from
// byte offsets.
const MaxRowChunk = (MaxPayload - RowHeaderLen) / 3 * 3

// Broadcast is the all-ones link address, used as the destination until a
// receiver card has been detected.
var Broadcast = [6]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// KnownEtherType reports whether t is one of the protocol's discriminators.
func KnownEtherType(t uint16) bool {
	switch t {
	case EtherTypeDetectRequest, EtherTypeDetectReply, EtherTypeDisplay,
		EtherTypeRowLow, EtherTypeRowHigh:
		return true
	default:
		return false
	}
}
