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
	"testing"
	"time"

	"github.com/PixelGridProject/go-colorlight/internal/frame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCardAddr = LinkAddress{0x5A, 0x75, 0x00, 0x00, 0x00, 0x01}

// buildDetectReply simulates a card answering a detection query.
func buildDetectReply(t *testing.T, cardAddr LinkAddress, major, minor byte, cols, rows uint16) []byte {
	t.Helper()
	payload := make([]byte, frame.DetectPayloadLen)
	payload[frame.DetectReplyModelOffset] = 0x5A
	payload[frame.DetectReplyVersionMajorOffset] = major
	payload[frame.DetectReplyVersionMinorOffset] = minor
	binary.BigEndian.PutUint16(payload[frame.DetectReplyColumnsOffset:], cols)
	binary.BigEndian.PutUint16(payload[frame.DetectReplyRowsOffset:], rows)
	return frame.Encode(frame.Header{
		Dst:       frame.Broadcast,
		Src:       cardAddr,
		EtherType: frame.EtherTypeDetectReply,
	}, payload)
}

func TestDetectReceiver(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.QueueFrame(buildDetectReply(t, testCardAddr, 1, 2, 256, 512))

	card, err := New(mock)
	require.NoError(t, err)

	info, err := card.DetectReceiver()
	require.NoError(t, err)
	assert.Equal(t, byte(0x5A), info.Model)
	assert.Equal(t, byte(1), info.VersionMajor)
	assert.Equal(t, byte(2), info.VersionMinor)
	assert.Equal(t, uint16(256), info.PixelColumns)
	assert.Equal(t, uint16(512), info.PixelRows)
	assert.Equal(t, testCardAddr, info.Addr)

	addr, ok := card.ReceiverAddr()
	assert.True(t, ok)
	assert.Equal(t, testCardAddr, addr)

	// Query then acknowledge, nothing else.
	sent := mock.SentFrames()
	require.Len(t, sent, 2)

	query := sent[0]
	require.Len(t, query, frame.HeaderLen+frame.DetectPayloadLen)
	assert.Equal(t, Broadcast[:], query[0:6])
	assert.Equal(t, mock.LocalAddr(), LinkAddress(query[6:12]))
	assert.Equal(t, byte(0x07), query[12])
	assert.Equal(t, byte(0x00), query[13])

	ack := sent[1]
	require.Len(t, ack, frame.HeaderLen+frame.DetectPayloadLen)
	assert.Equal(t, testCardAddr[:], ack[0:6])
	assert.Equal(t, byte(0x07), ack[12])
	assert.Equal(t, byte(0x00), ack[13])
	assert.Equal(t, byte(1), ack[frame.HeaderLen+frame.DetectAckFlagOffset])
}

func TestDetectReceiverDiscardsUnrelatedTraffic(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	// Garbage that does not even decode.
	mock.QueueFrame([]byte{0x01, 0x02, 0x03})
	// A well-formed frame from another family.
	mock.QueueFrame(frame.Encode(frame.Header{
		Src:       testCardAddr,
		EtherType: frame.EtherTypeDisplay,
	}, make([]byte, frame.DisplayPayloadLen)))
	mock.QueueFrame(buildDetectReply(t, testCardAddr, 3, 0, 128, 64))

	card, err := New(mock)
	require.NoError(t, err)

	info, err := card.DetectReceiver()
	require.NoError(t, err)
	assert.Equal(t, uint16(128), info.PixelColumns)
	assert.Equal(t, uint16(64), info.PixelRows)
}

func TestDetectReceiverTimeout(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport() // silence: empty receive queue
	card, err := New(mock, WithTimeout(50*time.Millisecond))
	require.NoError(t, err)

	info, err := card.DetectReceiver()
	require.ErrorIs(t, err, ErrTimeout)
	assert.Nil(t, info)

	// Exactly one query frame, no retry, no acknowledge.
	assert.Len(t, mock.SentFrames(), 1)

	_, ok := card.ReceiverAddr()
	assert.False(t, ok)
}

func TestDetectReceiverMalformedReply(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	// Reply discriminator but a payload too short to hold the identity.
	mock.QueueFrame(frame.Encode(frame.Header{
		Src:       testCardAddr,
		EtherType: frame.EtherTypeDetectReply,
	}, make([]byte, frame.DetectReplyMinLen-1)))

	card, err := New(mock)
	require.NoError(t, err)

	info, err := card.DetectReceiver()
	require.ErrorIs(t, err, ErrMalformedFrame)
	assert.Nil(t, info)

	// A malformed reply must not leak a partially learned address.
	_, ok := card.ReceiverAddr()
	assert.False(t, ok)
}

func TestDetectReceiverLearnedAddressUsedAfterwards(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	mock.QueueFrame(buildDetectReply(t, testCardAddr, 1, 0, 64, 32))

	card, err := New(mock)
	require.NoError(t, err)

	_, err = card.DetectReceiver()
	require.NoError(t, err)

	require.NoError(t, card.SendDisplayFrame(0x10, 0x20, 0x30, 0x05))

	sent := mock.SentFrames()
	require.Len(t, sent, 3) // query, ack, display
	assert.Equal(t, testCardAddr[:], sent[2][0:6])
}

func TestDetectReceiverBroadcastFallback(t *testing.T) {
	t.Parallel()

	mock := NewMockTransport()
	card, err := New(mock)
	require.NoError(t, err)

	// No detection ran; display and row frames go to broadcast.
	require.NoError(t, card.SendDisplayFrame(0, 0, 0, 0))
	require.NoError(t, card.SendRow(0, []byte{1, 2, 3}))

	for _, buf := range mock.SentFrames() {
		assert.Equal(t, Broadcast[:], buf[0:6])
	}
}
