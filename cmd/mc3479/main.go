// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// mc3479 reads acceleration samples from an MC3479 over I²C and prints them,
// or renders them as live terminal bar graphs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/mcube-devices/mc3479"
	"github.com/mcube-devices/mc3479/termbar"
)

var ranges = map[string]mc3479.Range{
	"2g":  mc3479.Range2G,
	"4g":  mc3479.Range4G,
	"8g":  mc3479.Range8G,
	"12g": mc3479.Range12G,
	"16g": mc3479.Range16G,
}

func mainImpl() error {
	busName := flag.String("bus", "", "I²C bus name or alias (default: first available)")
	addr := flag.Uint("addr", uint(mc3479.DefaultAddr), "7-bit device address")
	rangeName := flag.String("range", "", "measurement range to select (2g, 4g, 8g, 12g, 16g)")
	fixedScale := flag.Bool("fixed-scale", false, "early silicon revision without a range register")
	interval := flag.Duration("interval", 500*time.Millisecond, "sampling interval")
	count := flag.Int("n", 1, "number of samples, 0 for unlimited")
	bar := flag.Bool("bar", false, "render live bars instead of printing")
	flag.Parse()

	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		return err
	}
	defer b.Close()

	d, err := mc3479.NewI2C(b, &mc3479.Opts{Addr: uint16(*addr), FixedScale: *fixedScale})
	if err != nil {
		return err
	}
	defer d.Halt()

	if *rangeName != "" {
		r, ok := ranges[*rangeName]
		if !ok {
			return fmt.Errorf("unknown range %q", *rangeName)
		}
		if err := d.SetRange(r); err != nil {
			return err
		}
	}

	var display *termbar.Display
	if *bar {
		display = termbar.New(nil)
		defer display.Halt()
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	t := time.NewTicker(*interval)
	defer t.Stop()
	for n := 0; *count == 0 || n < *count; n++ {
		x, y, z, err := d.Acceleration()
		if err != nil {
			return err
		}
		if display != nil {
			if err := display.Update(x, y, z); err != nil {
				return err
			}
		} else {
			fmt.Printf("X: %+8.4fg  Y: %+8.4fg  Z: %+8.4fg\n", x, y, z)
		}
		if *count != 0 && n == *count-1 {
			break
		}
		select {
		case <-stop:
			return nil
		case <-t.C:
		}
	}
	return nil
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("mc3479: %v", err)
	}
}
