package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, envOf(nil))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(NewConfig(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPrecedence(t *testing.T) {
	env := envOf(map[string]string{
		"CHESS_ADDR":      ":8080",
		"CHESS_LOG_LEVEL": "debug",
		"CHESS_PROFILE":   "mem",
	})
	cfg, err := Load([]string{"-addr", ":9090", "-origins", "http://a.test, http://b.test"}, env)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := &Config{
		Addr:         ":9090",
		AllowOrigins: "http://a.test, http://b.test",
		LogLevel:     "debug",
		Profile:      ProfileMem,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"http://a.test", "http://b.test"}, cfg.Origins()); diff != "" {
		t.Errorf("Origins() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"empty addr", []string{"-addr", ""}},
		{"no origins", []string{"-origins", " , "}},
		{"wildcard origin", []string{"-origins", "*"}},
		{"bad log level", []string{"-log-level", "loud"}},
		{"bad profile", []string{"-profile", "gpu"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, envOf(nil))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load(%v) error = %v, want %v", tt.args, err, ErrInvalidConfig)
			}
		})
	}
}

func TestLoadUnknownFlag(t *testing.T) {
	if _, err := Load([]string{"-nope"}, envOf(nil)); err == nil {
		t.Error("Load accepted an unknown flag")
	}
}
