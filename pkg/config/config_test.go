package config_test

import (
	"testing"
	"time"

	"github.com/flui-ui/flui/pkg/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Defaults()
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Fatalf("unexpected default window size: %+v", cfg.Window)
	}
	if cfg.AnimationDefaults.Duration() != 300*time.Millisecond {
		t.Fatalf("expected default animation duration 300ms, got %v", cfg.AnimationDefaults.Duration())
	}
	if cfg.TickerRefreshHz != 60 {
		t.Fatalf("expected default ticker refresh 60hz, got %v", cfg.TickerRefreshHz)
	}
}

func TestLoadOverridesOnlySetFields(t *testing.T) {
	yamlDoc := []byte(`
window:
  title: "My App"
  width: 1024
  height: 768
`)
	cfg, err := config.Load(yamlDoc)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "My App" || cfg.Window.Width != 1024 || cfg.Window.Height != 768 {
		t.Fatalf("expected overridden window fields, got %+v", cfg.Window)
	}
	// Fields the document didn't mention keep their default values.
	if cfg.AnimationDefaults.DurationMS != 300 {
		t.Fatalf("expected untouched animation default to remain 300ms, got %v", cfg.AnimationDefaults.DurationMS)
	}
	if cfg.TickerRefreshHz != 60 {
		t.Fatalf("expected untouched ticker refresh to remain 60hz, got %v", cfg.TickerRefreshHz)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	if _, err := config.Load([]byte("window: [unterminated")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
