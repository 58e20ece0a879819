package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/balkashynov/wcagpairs/internal/models"
	"github.com/balkashynov/wcagpairs/internal/palette"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Level != models.ProfileAASmall || s.Filter != models.ProfileAll || s.Sort != models.SortRatio {
		t.Errorf("unexpected defaults: %+v", s)
	}
	if s.MaxColors != palette.DefaultSoftCap {
		t.Errorf("MaxColors = %d, want %d", s.MaxColors, palette.DefaultSoftCap)
	}
	if s.Sample != SampleColors {
		t.Errorf("Sample = %q", s.Sample)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"level", "all"},
		{"level", "gold"},
		{"filter", "bronze"},
		{"sort", "random"},
	}

	for _, tt := range tests {
		v := viper.New()
		SetDefaults(v)
		v.Set(tt.key, tt.value)
		if _, err := Load(v); err == nil {
			t.Errorf("%s=%s: expected error", tt.key, tt.value)
		}
	}
}

func TestInitReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wcagpairs.yaml")
	content := "level: aaa-small\nfilter: aa-large\nsort: palette\nmax_colors: 20\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	v := viper.New()
	if err := Init(v, path); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Level != models.ProfileAAASmall || s.Filter != models.ProfileAALarge || s.Sort != models.SortPalette {
		t.Errorf("config file not applied: %+v", s)
	}
	if s.MaxColors != 20 {
		t.Errorf("MaxColors = %d, want 20", s.MaxColors)
	}
}

func TestInitEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wcagpairs.yaml")
	if err := os.WriteFile(path, []byte("level: aaa-small\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv("WCAGPAIRS_LEVEL", "aa-large")

	v := viper.New()
	if err := Init(v, path); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if s.Level != models.ProfileAALarge {
		t.Errorf("Level = %s, want aa-large", s.Level)
	}
}

func TestInitMissingFileIsError(t *testing.T) {
	v := viper.New()
	if err := Init(v, filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for an explicit config file that does not exist")
	}
}
