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
	"errors"
	"time"
)

// Option is a functional option for configuring a Card.
type Option func(*Card) error

// WithTimeout sets the default detection receive bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Card) error {
		if timeout <= 0 {
			return errors.New("timeout must be positive")
		}
		c.config.Timeout = timeout
		return nil
	}
}

// WithRetryConfig wraps the session's transport so sends are retried on
// transient failures. Without this option the session never retries.
func WithRetryConfig(config *RetryConfig) Option {
	return func(c *Card) error {
		c.config.RetryConfig = config
		if tr, ok := c.transport.(*TransportWithRetry); ok {
			tr.SetRetryConfig(config)
			return nil
		}
		c.transport = NewTransportWithRetry(c.transport, config)
		return nil
	}
}

// WithMaxRetries sets the maximum send attempts, enabling the retry wrapper
// if it is not already in place.
func WithMaxRetries(maxAttempts int) Option {
	return func(c *Card) error {
		if maxAttempts < 1 {
			return errors.New("max attempts must be at least 1")
		}
		if c.config.RetryConfig == nil {
			c.config.RetryConfig = DefaultRetryConfig()
		}
		c.config.RetryConfig.MaxAttempts = maxAttempts
		return WithRetryConfig(c.config.RetryConfig)(c)
	}
}
