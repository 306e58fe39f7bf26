// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termbar renders live accelerometer axis readings as colored bar
// graphs on an ANSI terminal (stdout).
//
// Useful to eyeball sensor behavior from a shell before any host
// application exists.
package termbar

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// Opts represents the options available for this display.
type Opts struct {
	// Width is the number of cells in each bar.
	Width int
	// FullScale is the reading, in g, that fills a bar completely.
	FullScale float64
	// Palette converts colors to terminal codes.
	Palette *ansi256.Palette

	_ struct{}
}

// DefaultOpts holds the default display options.
var DefaultOpts = Opts{Width: 32, FullScale: 2}

// Display draws one bar per axis, overwriting itself in place on every
// update.
type Display struct {
	w         io.Writer
	width     int
	fullScale float64
	palette   ansi256.Palette

	frames int
	buf    bytes.Buffer
}

// New returns a Display that draws at the console.
func New(opts *Opts) *Display {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter is like New but draws to an arbitrary writer.
func NewWriter(w io.Writer, opts *Opts) *Display {
	if opts == nil {
		opts = &DefaultOpts
	}
	width := opts.Width
	if width <= 0 {
		width = DefaultOpts.Width
	}
	fullScale := opts.FullScale
	if fullScale <= 0 {
		fullScale = DefaultOpts.FullScale
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Display{w: w, width: width, fullScale: fullScale, palette: *p}
}

func (d *Display) String() string {
	return "TermBar"
}

// Update redraws the three axis bars with the given readings in g.
func (d *Display) Update(x, y, z float64) error {
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	if d.frames > 0 {
		// Move back up over the previous frame.
		_, _ = d.buf.WriteString("\033[3A")
	}
	d.bar('X', x)
	d.bar('Y', y)
	d.bar('Z', z)
	d.frames++
	_, err := d.buf.WriteTo(d.w)
	return err
}

// bar renders a single axis line. Cell color shifts from green to red as the
// bar approaches full scale.
func (d *Display) bar(axis rune, v float64) {
	fmt.Fprintf(&d.buf, "\r\033[0m%c %+8.4fg ", axis, v)
	fill := math.Abs(v) / d.fullScale
	if fill > 1 {
		fill = 1
	}
	lit := int(fill * float64(d.width))
	for i := 0; i < d.width; i++ {
		c := color.NRGBA{A: 255}
		if i < lit {
			frac := float64(i) / float64(d.width)
			c.R = byte(255 * frac)
			c.G = byte(255 * (1 - frac))
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = d.buf.WriteString("\033[0m\n")
}

// Halt implements conn.Resource.
//
// It resets terminal attributes so the shell is not left corrupted.
func (d *Display) Halt() error {
	_, err := d.w.Write([]byte("\033[0m"))
	return err
}

var _ fmt.Stringer = &Display{}
