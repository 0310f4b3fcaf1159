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
	"testing"

	colorlight "github.com/PixelGridProject/go-colorlight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnknownInterface(t *testing.T) {
	t.Parallel()

	tr, err := New("definitely-not-a-real-interface0")
	require.ErrorIs(t, err, colorlight.ErrInterfaceNotFound)
	assert.Nil(t, tr)
}

func TestHtons(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint16(0x0300), htons(0x0003))
	assert.Equal(t, uint16(0x0008), htons(0x0800))
	assert.Equal(t, uint16(0x0000), htons(0x0000))
	assert.Equal(t, uint16(0xFFFF), htons(0xFFFF))
}
