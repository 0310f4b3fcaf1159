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
	"testing"

	"github.com/PixelGridProject/go-colorlight/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDisplayPayload(t *testing.T) {
	t.Parallel()

	payload := EncodeDisplayPayload(DisplayParams{
		Red: 0xFF, Green: 0xFF, Blue: 0x76, Temperature: 0x06,
	})

	require.Len(t, payload, frame.DisplayPayloadLen)
	assert.Equal(t, byte(0xFF), payload[frame.DisplayBrightnessOffset])
	assert.Equal(t, byte(frame.DisplayModeValue), payload[frame.DisplayModeOffset])
	assert.Equal(t,
		[]byte{0xFF, 0xFF, 0x76, 0x06},
		payload[frame.DisplayFieldOffset:frame.DisplayFieldOffset+frame.DisplayFieldLen])
}

func TestDisplayPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params DisplayParams
	}{
		{name: "full brightness", params: DisplayParams{Red: 0xFF, Green: 0xFF, Blue: 0xFF, Temperature: 0xFF}},
		{name: "mixed channels", params: DisplayParams{Red: 0xFF, Green: 0xFF, Blue: 0x76, Temperature: 0x06}},
		{name: "all zero", params: DisplayParams{}},
		{name: "quarter red", params: DisplayParams{Red: 0x40}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DecodeDisplayPayload(EncodeDisplayPayload(tt.params))
			require.NoError(t, err)
			assert.Equal(t, tt.params, got)
		})
	}
}

func TestDecodeDisplayPayloadTooShort(t *testing.T) {
	t.Parallel()

	_, err := DecodeDisplayPayload(make([]byte, frame.DisplayFieldOffset))
	require.ErrorIs(t, err, ErrMalformedFrame)
}

func TestSendDisplayFrame(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	card, err := New(mock)
	require.NoError(t, err)

	require.NoError(t, card.SendDisplayFrame(0xFF, 0xFF, 0x76, 0x06))

	sent := mock.SentFrames()
	require.Len(t, sent, 1)

	h, payload, err := frame.Decode(sent[0])
	require.NoError(t, err)
	assert.Equal(t, frame.EtherTypeDisplay, h.EtherType)
	assert.Equal(t, frame.Broadcast, h.Dst)
	assert.Equal(t, mock.LocalAddr(), LinkAddress(h.Src))

	params, err := DecodeDisplayPayload(payload)
	require.NoError(t, err)
	assert.Equal(t, DisplayParams{Red: 0xFF, Green: 0xFF, Blue: 0x76, Temperature: 0x06}, params)
}

func TestSendDisplayFrameTransportFailure(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.SendFunc = func([]byte) error {
		return NewTransportError("write", "mock", ErrTransportWrite, ErrorTypeTransient)
	}
	card, err := New(mock)
	require.NoError(t, err)

	err = card.SendDisplayFrame(1, 2, 3, 4)
	require.ErrorIs(t, err, ErrTransportWrite)
	assert.Empty(t, mock.SentFrames())
}
