// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mc3479 provides a driver for the mCube MC3479 triaxial
// accelerometer connected over I²C.
//
// The driver verifies the chip identity at construction, exposes the
// operating mode and measurement range selectors, and converts the six
// acceleration data registers into per-axis readings in g.
//
// Axis counts are composed unsigned (MSB*256 + LSB) with no
// two's-complement interpretation; see Dev.Acceleration.
//
// The driver performs no locking. A Dev is meant to be owned by a single
// goroutine; wrap it externally if it must be shared, in particular around
// SetRange, whose three bus transactions are not atomic.
//
// For detailed register information, refer to the [datasheet].
//
// [datasheet]: https://mcubemems.com/product/mc3479-3-axis-accelerometer/
package mc3479
