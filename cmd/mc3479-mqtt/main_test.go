// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mcube-devices/mc3479"
)

func TestSamplePayload(t *testing.T) {
	ts := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	payload, err := json.Marshal(newSample(0.015625, -0.5, 1, mc3479.Range8G, ts))
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"x", "y", "z", "range", "time"} {
		if _, ok := got[key]; !ok {
			t.Errorf("payload missing %q field: %s", key, payload)
		}
	}
	if got["range"] != "±8g" {
		t.Errorf(`range = %v, want "±8g"`, got["range"])
	}
	if got["x"] != 0.015625 {
		t.Errorf("x = %v, want 0.015625", got["x"])
	}
}
