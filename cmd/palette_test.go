package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestShowPalette(t *testing.T) {
	services, _, _ := newTestServices(t)
	d, stdout, _, exitCode := testDeps(services)
	SetDeps(d)
	defer ResetDeps()

	showPalette("material", "")

	output := stdout.String()
	if !strings.Contains(output, "Base:") || !strings.Contains(output, "#1de9b6") {
		t.Errorf("Expected base color in output, got: %s", output)
	}
	if !strings.Contains(output, "active:") {
		t.Errorf("Expected active group in output, got: %s", output)
	}
	if !strings.Contains(output, "Window") || !strings.Contains(output, "#232629") {
		t.Errorf("Expected Window role in output, got: %s", output)
	}
	if *exitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", *exitCode)
	}
}

func TestShowPalette_NoPalette(t *testing.T) {
	services, stylesDir, _ := newTestServices(t)

	bare := strings.NewReplacer(
		`"palette": {
    "base_color": "primaryColor",
    "active": {
      "Window": "secondaryColor"
    }
  },`, "",
	).Replace(testDefinition)
	definition := filepath.Join(stylesDir, "material", "material.json")
	if err := os.WriteFile(definition, []byte(bare), 0o644); err != nil {
		t.Fatal(err)
	}

	d, stdout, _, _ := testDeps(services)
	SetDeps(d)
	defer ResetDeps()

	showPalette("material", "")

	if !strings.Contains(stdout.String(), "Style material defines no palette") {
		t.Errorf("Expected no-palette message, got: %s", stdout.String())
	}
}

func TestShowPalette_UnknownStyle(t *testing.T) {
	services, _, _ := newTestServices(t)
	d, _, stderr, exitCode := testDeps(services)
	SetDeps(d)
	defer ResetDeps()

	showPalette("nope", "")

	if !strings.Contains(stderr.String(), "Error: Failed to derive palette for style 'nope'") {
		t.Errorf("Expected error on stderr, got: %s", stderr.String())
	}
	if *exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", *exitCode)
	}
}
