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
	"fmt"

	"github.com/PixelGridProject/go-colorlight/internal/frame"
)

// DisplayParams are the per-channel brightness scales and the color
// temperature code of a display command. Any byte value is valid at this
// layer; what a given temperature code means is the hardware's business.
type DisplayParams struct {
	Red         byte
	Green       byte
	Blue        byte
	Temperature byte
}

// EncodeDisplayPayload packs params into a display-family payload. Pure and
// stateless; the inverse of DecodeDisplayPayload.
func EncodeDisplayPayload(params DisplayParams) []byte {
	payload := make([]byte, frame.DisplayPayloadLen)
	// Legacy global brightness stays at full scale so the per-channel
	// fields are the only scaling in effect.
	payload[frame.DisplayBrightnessOffset] = 0xFF
	payload[frame.DisplayModeOffset] = frame.DisplayModeValue
	payload[frame.DisplayFieldOffset] = params.Red
	payload[frame.DisplayFieldOffset+1] = params.Green
	payload[frame.DisplayFieldOffset+2] = params.Blue
	payload[frame.DisplayFieldOffset+3] = params.Temperature
	return payload
}

// DecodeDisplayPayload recovers DisplayParams from a display-family payload.
func DecodeDisplayPayload(payload []byte) (DisplayParams, error) {
	if len(payload) < frame.DisplayFieldOffset+frame.DisplayFieldLen {
		return DisplayParams{}, fmt.Errorf("display payload %d bytes, need %d: %w",
			len(payload), frame.DisplayFieldOffset+frame.DisplayFieldLen, ErrMalformedFrame)
	}
	return DisplayParams{
		Red:         payload[frame.DisplayFieldOffset],
		Green:       payload[frame.DisplayFieldOffset+1],
		Blue:        payload[frame.DisplayFieldOffset+2],
		Temperature: payload[frame.DisplayFieldOffset+3],
	}, nil
}

// SendDisplayFrame sends a display command, latching the streamed rows onto
// the panel with the given channel brightness scales and temperature code.
func (c *Card) SendDisplayFrame(red, green, blue, temperature byte) error {
	payload := EncodeDisplayPayload(DisplayParams{
		Red:         red,
		Green:       green,
		Blue:        blue,
		Temperature: temperature,
	})
	buf := frame.Encode(c.header(frame.EtherTypeDisplay), payload)
	if err := c.transport.SendFrame(buf); err != nil {
		return fmt.Errorf("display frame: %w", err)
	}
	return nil
}
