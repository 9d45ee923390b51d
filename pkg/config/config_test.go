package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/sprawl/pkg/errors"
	"github.com/matzehuels/sprawl/pkg/growth"
	"github.com/matzehuels/sprawl/pkg/render"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Steps != growth.DefaultSteps {
		t.Errorf("Steps = %d, want %d", c.Steps, growth.DefaultSteps)
	}
	if c.Glyphs.Style() != render.Brick {
		t.Errorf("Glyphs = %+v, want brick style", c.Glyphs)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantSteps int
		wantTop   string
		wantErr   bool
	}{
		{
			name:      "empty keeps defaults",
			data:      "",
			wantSteps: 128,
			wantTop:   "▐▀▀▌",
		},
		{
			name:      "steps only",
			data:      "steps = 10\n",
			wantSteps: 10,
			wantTop:   "▐▀▀▌",
		},
		{
			name:      "glyphs",
			data:      "[glyphs]\ntop = \"[--]\"\nbottom = \"[__]\"\n",
			wantSteps: 128,
			wantTop:   "[--]",
		},
		{
			name:      "zero steps",
			data:      "steps = 0\n",
			wantSteps: 0,
			wantTop:   "▐▀▀▌",
		},
		{
			name:    "negative steps",
			data:    "steps = -3\n",
			wantErr: true,
		},
		{
			name:    "mismatched glyph width",
			data:    "[glyphs]\ntop = \"##\"\n",
			wantErr: true,
		},
		{
			name:    "narrow glyphs",
			data:    "[glyphs]\ntop = \"#\"\nbottom = \"=\"\nblank = \".\"\n",
			wantErr: true,
		},
		{
			name:    "wide glyphs",
			data:    "[glyphs]\ntop = \"[----]\"\nbottom = \"[____]\"\nblank = \"      \"\n",
			wantErr: true,
		},
		{
			name:    "unknown key",
			data:    "seed = 42\n",
			wantErr: true,
		},
		{
			name:    "malformed",
			data:    "steps = \n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.data))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidConfig)
				}
				return
			}
			if c.Steps != tt.wantSteps {
				t.Errorf("Steps = %d, want %d", c.Steps, tt.wantSteps)
			}
			if c.Glyphs.Top != tt.wantTop {
				t.Errorf("Glyphs.Top = %q, want %q", c.Glyphs.Top, tt.wantTop)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if c != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", c)
	}

	path := filepath.Join(t.TempDir(), "sprawl.toml")
	if err := os.WriteFile(path, []byte("steps = 5\n"), 0644); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Steps != 5 {
		t.Errorf("Steps = %d, want 5", c.Steps)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
