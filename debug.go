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
	"log"
	"sync/atomic"
)

var debugEnabled atomic.Bool

// SetDebugEnabled toggles debug logging of protocol traffic decisions.
// Errors are never logged in place of being returned; this only narrates.
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}

func debugf(format string, args ...any) {
	if debugEnabled.Load() {
		log.Printf("colorlight: "+format, args...)
	}
}
