// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// mc3479-mqtt samples an MC3479 accelerometer and publishes the readings as
// JSON over MQTT.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/mcube-devices/mc3479"
)

// sample is the published payload.
type sample struct {
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Z     float64   `json:"z"`
	Range string    `json:"range"`
	Time  time.Time `json:"time"`
}

func newSample(x, y, z float64, r mc3479.Range, t time.Time) sample {
	return sample{X: x, Y: y, Z: z, Range: r.String(), Time: t}
}

func main() {
	broker := flag.String("broker", "tcp://localhost:1883", "MQTT broker URL")
	topic := flag.String("topic", "accel/mc3479", "MQTT topic to publish on")
	clientID := flag.String("client-id", "mc3479-producer", "MQTT client ID")
	busName := flag.String("bus", "", "I²C bus name or alias (default: first available)")
	addr := flag.Uint("addr", uint(mc3479.DefaultAddr), "7-bit device address")
	interval := flag.Duration("interval", 100*time.Millisecond, "sampling interval")
	flag.Parse()

	log.Println("starting MC3479 acceleration producer (I²C → MQTT)")

	if _, err := host.Init(); err != nil {
		log.Fatalf("host init: %v", err)
	}
	b, err := i2creg.Open(*busName)
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer b.Close()

	dev, err := mc3479.NewI2C(b, &mc3479.Opts{Addr: uint16(*addr)})
	if err != nil {
		log.Fatalf("failed to initialize MC3479: %v", err)
	}
	defer dev.Halt()

	r, err := dev.Range()
	if err != nil {
		log.Fatalf("failed to read range: %v", err)
	}

	opts := mqtt.NewClientOptions().
		AddBroker(*broker).
		SetClientID(*clientID)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatalf("MQTT connect error: %v", token.Error())
	}
	defer client.Disconnect(250)

	log.Printf("connected to %s, publishing on %s", *broker, *topic)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			log.Println("interrupted, shutting down")
			return
		case t := <-ticker.C:
			x, y, z, err := dev.Acceleration()
			if err != nil {
				log.Printf("error reading acceleration: %v", err)
				continue
			}
			payload, err := json.Marshal(newSample(x, y, z, r, t))
			if err != nil {
				log.Printf("json marshal error: %v", err)
				continue
			}
			if token := client.Publish(*topic, 0, false, payload); token.Wait() && token.Error() != nil {
				log.Printf("MQTT publish error: %v", token.Error())
			}
		}
	}
}
