// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mc3479

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddr is the 7-bit I²C address of the MC3479 with the address pin
// left low.
const DefaultAddr uint16 = 0x4C

// chipID is the fixed identity byte reported by the WHOAMI register.
const chipID = 0xA4

// Register addresses.
const (
	regStatus = 0x05
	regMode   = 0x07 // bits [1:0]: operating mode
	regXLSB   = 0x0D
	regXMSB   = 0x0E
	regYLSB   = 0x0F
	regYMSB   = 0x10
	regZLSB   = 0x11
	regZMSB   = 0x12
	regRange  = 0x20 // bits [6:4]: measurement range
	regWhoAmI = 0x98 // must read chipID
)

// Bit-field positions of the mode and range selectors within their
// registers.
const (
	modeShift  = 0
	modeWidth  = 2
	rangeShift = 4
	rangeWidth = 3
)

// Mode is the operating mode of the sensor.
type Mode uint8

const (
	// Standby stops sampling. Registers stay accessible and configuration
	// changes are accepted.
	Standby Mode = 0
	// Normal is the continuous sampling mode.
	Normal Mode = 1
)

func (m Mode) String() string {
	switch m {
	case Standby:
		return "standby"
	case Normal:
		return "normal"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Range is the full-scale measurement range of the sensor.
type Range uint8

const (
	Range2G  Range = 0b000
	Range4G  Range = 0b001
	Range8G  Range = 0b010
	Range16G Range = 0b011
	Range12G Range = 0b100
)

// sensitivities holds the datasheet counts-per-g value for each range.
var sensitivities = map[Range]float64{
	Range2G:  16384,
	Range4G:  8192,
	Range8G:  4096,
	Range16G: 2048,
	Range12G: 2730,
}

func (r Range) String() string {
	switch r {
	case Range2G:
		return "±2g"
	case Range4G:
		return "±4g"
	case Range8G:
		return "±8g"
	case Range16G:
		return "±16g"
	case Range12G:
		return "±12g"
	}
	return fmt.Sprintf("Range(%d)", uint8(r))
}

// CountsPerG returns the sensitivity of the range in counts per g. Range
// values outside the datasheet table fail with an UndefinedRangeError.
func (r Range) CountsPerG() (float64, error) {
	f, ok := sensitivities[r]
	if !ok {
		return 0, &UndefinedRangeError{Value: uint8(r)}
	}
	return f, nil
}

// Opts holds the configuration options for the device.
type Opts struct {
	// Addr is the 7-bit device address. Leave 0 to use DefaultAddr.
	Addr uint16
	// FixedScale selects the early silicon revision that has no range
	// register: readings pass through with a divisor of 1 and
	// Range/SetRange are unavailable.
	FixedScale bool
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{Addr: DefaultAddr}

// Dev is a handle to an MC3479 accelerometer on an I²C bus.
//
// Dev caches no register state and holds no lock; every accessor is a
// blocking bus transaction and a Dev is meant to be owned by a single
// goroutine.
type Dev struct {
	d    *i2c.Dev
	opts Opts
}

// NewI2C returns a Dev that communicates over I²C with an MC3479.
//
// The identity register is read first; if it does not carry the MC3479 chip
// ID the construction fails with a DeviceNotFoundError. On success the
// device is placed in Normal mode. The Opts can be nil.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	d := &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, opts: *opts}
	id, err := d.readReg(regWhoAmI)
	if err != nil {
		return nil, err
	}
	if id != chipID {
		return nil, &DeviceNotFoundError{ID: id}
	}
	if err := d.SetMode(Normal); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("mc3479: %s", d.d.String())
}

// Acceleration reads the three axes and returns their values in g.
//
// Each axis is composed unsigned from its two data registers as MSB*256+LSB;
// no two's-complement interpretation is applied, so negative accelerations
// show up as large counts above the range midpoint. The composed count is
// divided by the counts-per-g value of the currently selected range, or by 1
// on the fixed-scale revision.
func (d *Dev) Acceleration() (x, y, z float64, err error) {
	factor := 1.0
	if !d.opts.FixedScale {
		r, err := d.Range()
		if err != nil {
			return 0, 0, 0, err
		}
		factor, err = r.CountsPerG()
		if err != nil {
			return 0, 0, 0, err
		}
	}
	xc, err := d.readAxis(regXMSB, regXLSB)
	if err != nil {
		return 0, 0, 0, err
	}
	yc, err := d.readAxis(regYMSB, regYLSB)
	if err != nil {
		return 0, 0, 0, err
	}
	zc, err := d.readAxis(regZMSB, regZLSB)
	if err != nil {
		return 0, 0, 0, err
	}
	return float64(xc) / factor, float64(yc) / factor, float64(zc) / factor, nil
}

// Mode returns the current operating mode.
func (d *Dev) Mode() (Mode, error) {
	v, err := d.readBits(regMode, modeShift, modeWidth)
	return Mode(v), err
}

// SetMode switches the device between Standby and Normal. Other values are
// rejected before any bus traffic.
func (d *Dev) SetMode(m Mode) error {
	switch m {
	case Standby, Normal:
	default:
		return fmt.Errorf("mc3479: invalid mode %d", uint8(m))
	}
	return d.writeBits(regMode, modeShift, modeWidth, byte(m))
}

// Range returns the currently selected measurement range.
func (d *Dev) Range() (Range, error) {
	if d.opts.FixedScale {
		return 0, ErrNoRangeRegister
	}
	v, err := d.readBits(regRange, rangeShift, rangeWidth)
	return Range(v), err
}

// SetRange selects the measurement range.
//
// The chip only accepts a range change in standby, so the field write is
// bracketed by mode writes. The three bus transactions are not atomic: a
// concurrent Acceleration call may observe the device in standby or scale
// against the previous range.
func (d *Dev) SetRange(r Range) error {
	if d.opts.FixedScale {
		return ErrNoRangeRegister
	}
	switch r {
	case Range2G, Range4G, Range8G, Range16G, Range12G:
	default:
		return fmt.Errorf("mc3479: invalid range %d", uint8(r))
	}
	if err := d.SetMode(Standby); err != nil {
		return err
	}
	if err := d.writeBits(regRange, rangeShift, rangeWidth, byte(r)); err != nil {
		return err
	}
	return d.SetMode(Normal)
}

// Status returns the raw status register.
func (d *Dev) Status() (byte, error) {
	return d.readReg(regStatus)
}

// Halt puts the device in standby. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.SetMode(Standby)
}

// readAxis composes the two data registers of one axis into an unsigned
// 16-bit count.
func (d *Dev) readAxis(msbReg, lsbReg byte) (uint16, error) {
	msb, err := d.readReg(msbReg)
	if err != nil {
		return 0, err
	}
	lsb, err := d.readReg(lsbReg)
	if err != nil {
		return 0, err
	}
	return uint16(msb)*256 + uint16(lsb), nil
}

func (d *Dev) readReg(reg byte) (byte, error) {
	var v [1]byte
	if err := d.d.Tx([]byte{reg}, v[:]); err != nil {
		return 0, err
	}
	return v[0], nil
}

func (d *Dev) writeReg(reg, value byte) error {
	return d.d.Tx([]byte{reg, value}, nil)
}

// readBits extracts the width-bit field at shift from a register byte.
func (d *Dev) readBits(reg byte, shift, width uint) (byte, error) {
	v, err := d.readReg(reg)
	if err != nil {
		return 0, err
	}
	return (v >> shift) & byte(1<<width-1), nil
}

// writeBits read-modify-writes the width-bit field at shift, leaving the
// other bits of the register untouched.
func (d *Dev) writeBits(reg byte, shift, width uint, value byte) error {
	cur, err := d.readReg(reg)
	if err != nil {
		return err
	}
	mask := byte(1<<width-1) << shift
	return d.writeReg(reg, (cur&^mask)|(value<<shift&mask))
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
