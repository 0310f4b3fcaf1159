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
	"fmt"

	"github.com/PixelGridProject/go-colorlight/internal/frame"
)

// SendRow streams one display row to the card's framebuffer. bgr holds the
// row's pixels as BGR triplets and must be a non-empty multiple of 3 bytes;
// anything else fails with ErrInvalidRowData before any frame is sent.
//
// Rows wider than one frame's payload budget are split into chunks of at
// most frame.MaxRowChunk bytes (a multiple of 3, so chunks always hold
// whole pixels) and transmitted in strictly increasing offset order. The
// first send failure aborts the remaining chunks; a partially transmitted
// row is not retried or rolled back.
//
// rowIndex is not checked against the panel height; an out-of-range row is
// the hardware's concern.
func (c *Card) SendRow(rowIndex uint16, bgr []byte) error {
	if len(bgr) == 0 || len(bgr)%3 != 0 {
		return fmt.Errorf("row buffer of %d bytes is not a whole number of BGR pixels: %w",
			len(bgr), ErrInvalidRowData)
	}

	etherType := frame.EtherTypeRowLow
	if rowIndex > 0xFF {
		etherType = frame.EtherTypeRowHigh
	}
	h := c.header(etherType)

	for offset := 0; offset < len(bgr); offset += frame.MaxRowChunk {
		chunk := bgr[offset:min(offset+frame.MaxRowChunk, len(bgr))]

		payload := make([]byte, frame.RowHeaderLen+len(chunk))
		payload[frame.RowIndexOffset] = byte(rowIndex)
		binary.BigEndian.PutUint16(payload[frame.RowPixelOffsetOffset:], uint16(offset/3))
		binary.BigEndian.PutUint16(payload[frame.RowPixelCountOffset:], uint16(len(chunk)/3))
		payload[frame.RowFlagAOffset] = frame.RowFlagAValue
		payload[frame.RowFlagBOffset] = frame.RowFlagBValue
		copy(payload[frame.RowHeaderLen:], chunk)

		if err := c.transport.SendFrame(frame.Encode(h, payload)); err != nil {
			return fmt.Errorf("row %d chunk at byte %d: %w", rowIndex, offset, err)
		}
	}
	return nil
}
