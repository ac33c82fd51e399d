package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/gol-board/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if c.Width != 25 || c.Height != 25 {
		t.Errorf("default size = %dx%d, want 25x25", c.Width, c.Height)
	}
	if c.TickInterval != 150*time.Millisecond {
		t.Errorf("default tick = %v, want 150ms", c.TickInterval)
	}
	if c.RandomDensity != 0.3 {
		t.Errorf("default density = %v, want 0.3", c.RandomDensity)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
	if topology, _ := c.GetTopology(); topology != model.Clamped {
		t.Errorf("default topology = %v, want clamped", topology)
	}
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"width": 40, "topology": "toroidal", "tick_interval": 200000000}`)

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Width != 40 || c.Height != 25 {
		t.Errorf("size = %dx%d, want 40x25", c.Width, c.Height)
	}
	if c.TickInterval != 200*time.Millisecond {
		t.Errorf("tick = %v, want 200ms", c.TickInterval)
	}
	if topology, _ := c.GetTopology(); topology != model.Toroidal {
		t.Errorf("topology = %v, want toroidal", topology)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.json") },
			wantMsg: "failed to read file",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeConfig(t, `{"width": `) },
			wantMsg: "failed to unmarshal",
		},
		{
			name:    "unknown topology",
			path:    func(t *testing.T) string { return writeConfig(t, `{"topology": "sphere"}`) },
			wantMsg: "unknown topology",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := LoadConfig(tt.path(t))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
			if c.Width == 0 {
				t.Error("expected defaults to be returned alongside the error")
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
		{"negative density", func(c *Config) { c.RandomDensity = -0.1 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -5 }},
		{"bad topology", func(c *Config) { c.Topology = "hex" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.mutate(&c)
			if err := c.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	c, found, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "config.json"))
	if err != nil || found {
		t.Fatalf("missing file: found=%v err=%v", found, err)
	}
	if c != DefaultConfig() {
		t.Errorf("got %+v, want defaults", c)
	}

	_, found, err = LoadConfigOrDefault(writeConfig(t, `{"width": -3}`))
	if err == nil || !found {
		t.Errorf("invalid file: found=%v err=%v", found, err)
	}

	c, found, err = LoadConfigOrDefault(writeConfig(t, `{"headless": true}`))
	if err != nil || !found || !c.Headless {
		t.Errorf("valid file: found=%v err=%v headless=%v", found, err, c.Headless)
	}
}
