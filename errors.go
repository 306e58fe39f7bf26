// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mc3479

import (
	"errors"
	"fmt"
)

// ErrNoRangeRegister is returned for range operations on the early silicon
// revision selected with Opts.FixedScale, which has no range register.
var ErrNoRangeRegister = errors.New("mc3479: fixed-scale revision has no range register")

// DeviceNotFoundError is returned by NewI2C when the identity register does
// not carry the MC3479 chip ID. Construction is not retried.
type DeviceNotFoundError struct {
	ID byte // byte read from the WHOAMI register
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("mc3479: device not found, WHOAMI read %#02x, want %#02x", e.ID, chipID)
}

// UndefinedRangeError is returned when a range value falls outside the
// datasheet's sensitivity table.
type UndefinedRangeError struct {
	Value uint8
}

func (e *UndefinedRangeError) Error() string {
	return fmt.Sprintf("mc3479: no sensitivity defined for range value %#x", e.Value)
}
