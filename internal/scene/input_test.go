package scene

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/iburimskiy/drift/internal/config"
	"github.com/iburimskiy/drift/internal/field"
	"github.com/iburimskiy/drift/internal/geom"
	"github.com/iburimskiy/drift/internal/pointer"
)

func TestInputIgnoresFirstReading(t *testing.T) {
	l, ind := newTestLoop(t)
	in := NewInput(l)

	in.Poll(geom.Point{X: 0, Y: 0}, false, false)
	if l.Tracker().Raw() != pointer.Offscreen {
		t.Fatalf("Raw() = %v after first reading, want %v", l.Tracker().Raw(), pointer.Offscreen)
	}
	if len(ind.dots) != 0 {
		t.Fatalf("dot moved on first reading: %v", ind.dots)
	}

	// same position again is still not a move
	in.Poll(geom.Point{X: 0, Y: 0}, false, false)
	if l.Tracker().Raw() != pointer.Offscreen {
		t.Fatalf("Raw() = %v for unchanged reading", l.Tracker().Raw())
	}

	moved := geom.Point{X: 40, Y: 30}
	in.Poll(moved, false, false)
	if l.Tracker().Raw() != moved {
		t.Errorf("Raw() = %v, want %v", l.Tracker().Raw(), moved)
	}
	if len(ind.dots) != 1 || ind.dots[0] != moved {
		t.Errorf("dots = %v, want [%v]", ind.dots, moved)
	}
}

func TestInputPressMovesToPressPoint(t *testing.T) {
	tests := []struct {
		name  string
		polls []geom.Point
	}{
		{"press on first reading", nil},
		{"press after moves", []geom.Point{{X: 10, Y: 10}, {X: 700, Y: 700}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, _ := newTestLoop(t)
			l.Frame(&fakeSurface{w: 1000, h: 1000})
			in := NewInput(l)
			for _, p := range tc.polls {
				in.Poll(p, false, false)
			}

			ps := l.Field().Particles()
			ps[0].X, ps[0].Y, ps[0].VX, ps[0].VY = 200, 300, 0, 0

			at := geom.Point{X: 200, Y: 200}
			in.Poll(at, true, false)

			if l.Tracker().Raw() != at {
				t.Errorf("Raw() = %v, want press point %v", l.Tracker().Raw(), at)
			}
			if !l.Tracker().Pressed() {
				t.Error("tracker not pressed")
			}
			if got := ps[0].VY; got < field.ImpulseStrength-1e-9 {
				t.Errorf("particle below press point has vy %v, want %v", got, field.ImpulseStrength)
			}

			in.Poll(at, false, true)
			if l.Tracker().Pressed() {
				t.Error("tracker still pressed after release")
			}
		})
	}
}

func TestCloseLogsSummary(t *testing.T) {
	cfg, err := config.Default()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	l := New(cfg, rand.New(rand.NewSource(1)), &fakeIndicator{}, logger)
	s := &fakeSurface{w: 300, h: 300}
	l.Frame(s)
	l.Frame(s)
	buf.Reset()

	l.Close("00:05")

	var rec struct {
		Msg       string `json:"msg"`
		Frames    uint64 `json:"frames"`
		Uptime    string `json:"uptime"`
		Particles int    `json:"particles"`
	}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("decoding log line %q: %v", buf.String(), err)
	}
	if rec.Msg != "stopped" || rec.Frames != 2 || rec.Uptime != "00:05" || rec.Particles != 9 {
		t.Errorf("summary = %+v", rec)
	}
}
