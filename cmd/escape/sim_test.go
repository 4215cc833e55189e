package main

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/registry"
)

func TestParseScript(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []scriptEvent
		wantErr bool
	}{
		{name: "empty", in: ""},
		{
			name: "press and release",
			in:   "1:enter, 2:right,60:-right",
			want: []scriptEvent{
				{1, core.KeyEvent{Kind: core.KeyDown, Key: core.KeyOther}},
				{2, core.KeyEvent{Kind: core.KeyDown, Key: core.KeyRight}},
				{60, core.KeyEvent{Kind: core.KeyUpEvent, Key: core.KeyRight}},
			},
		},
		{
			name: "sorted by tick keeping written order",
			in:   "5:up,3:left,5:-up",
			want: []scriptEvent{
				{3, core.KeyEvent{Kind: core.KeyDown, Key: core.KeyLeft}},
				{5, core.KeyEvent{Kind: core.KeyDown, Key: core.KeyUp}},
				{5, core.KeyEvent{Kind: core.KeyUpEvent, Key: core.KeyUp}},
			},
		},
		{
			name: "space jumps",
			in:   "1:space",
			want: []scriptEvent{{1, core.KeyEvent{Kind: core.KeyDown, Key: core.KeyUp}}},
		},
		{name: "missing colon", in: "12", wantErr: true},
		{name: "bad tick", in: "x:left", wantErr: true},
		{name: "tick zero", in: "0:left", wantErr: true},
		{name: "missing key", in: "4:-", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseScript(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseScript(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("parseScript(%q) = %+v, expected %+v", tc.in, got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Errorf("event %d = %+v, expected %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func simConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

func TestSimulateStartsAndRuns(t *testing.T) {
	game, err := registry.Create("tvescape")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	script, err := parseScript("1:x")
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}

	report := simulate(game, simConfig(), 60, script)

	if report.Phase != "playing" {
		t.Errorf("phase = %s, expected playing", report.Phase)
	}
	if report.Frame != 60 {
		t.Errorf("frame = %d, expected 60", report.Frame)
	}
	if report.Events["started"] != 1 {
		t.Errorf("events = %v, expected one start", report.Events)
	}
	if report.Tones == 0 {
		t.Error("the ambient melody should have produced tones")
	}
}

func TestSimulateIsReproducible(t *testing.T) {
	script, err := parseScript("1:x,2:right,40:up,41:-up,200:-right,210:left")
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}

	run := func() simReport {
		game, err := registry.Create("aiescape")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		return simulate(game, simConfig(), 400, script)
	}

	a, b := run(), run()
	if a.Snapshot.Hash() != b.Snapshot.Hash() || a.Tones != b.Tones {
		t.Errorf("runs differ: %+v vs %+v", a.Snapshot, b.Snapshot)
	}
}

func TestSimReportYAML(t *testing.T) {
	game, err := registry.Create("aiescape")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	report := simulate(game, simConfig(), 5, nil)

	out, err := yaml.Marshal(report)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	text := string(out)
	for _, want := range []string{"game: aiescape", "frame: 5", "phase: start", "tones:"} {
		if !strings.Contains(text, want) {
			t.Errorf("yaml missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "events:") {
		t.Error("empty event counts should be omitted")
	}
}
