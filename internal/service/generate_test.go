package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/styleforge/styleforge/internal/palette"
)

func TestGenerateService_Engine_MissingStyle(t *testing.T) {
	svc, _, _ := newTestServices(t)

	_, err := svc.Generate.Engine("", "", nil)
	if !errors.Is(err, ErrMissingStyle) {
		t.Fatalf("Engine(\"\") error = %v, want ErrMissingStyle", err)
	}
}

func TestGenerateService_Engine_DefaultTheme(t *testing.T) {
	svc, _, _ := newTestServices(t)

	eng, err := svc.Generate.Engine("material", "", nil)
	if err != nil {
		t.Fatalf("Engine() error = %v", err)
	}
	if eng.CurrentTheme() != "dark_teal" {
		t.Errorf("CurrentTheme() = %q, want dark_teal", eng.CurrentTheme())
	}
}

func TestGenerateService_Engine_Overrides(t *testing.T) {
	svc, _, _ := newTestServices(t)

	eng, err := svc.Generate.Engine("material", "light_blue", map[string]string{
		"primaryColor": "#ff0000",
	})
	if err != nil {
		t.Fatalf("Engine() error = %v", err)
	}
	if got, ok := eng.Variable("primaryColor"); !ok || got != "#ff0000" {
		t.Errorf("Variable(primaryColor) = %q (%v), want override #ff0000", got, ok)
	}
}

func TestGenerateService_Generate(t *testing.T) {
	svc, _, outputDir := newTestServices(t)

	result, err := svc.Generate.Generate(GenerateOptions{Style: "material"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if result.Style != "material" || result.Theme != "dark_teal" {
		t.Errorf("result = %s/%s, want material/dark_teal", result.Style, result.Theme)
	}
	if !result.Dark {
		t.Error("result should report Dark for dark_teal")
	}
	if result.Stylesheet != "material.css" {
		t.Errorf("Stylesheet = %q, want material.css", result.Stylesheet)
	}
	if result.Written != 2 || result.Skipped != 0 {
		t.Errorf("Written/Skipped = %d/%d, want 2/0", result.Written, result.Skipped)
	}

	css := readOutput(t, outputDir, "material", "material.css")
	if !strings.Contains(css, "color: #1de9b6;") {
		t.Errorf("stylesheet missing theme color:\n%s", css)
	}
	if !strings.Contains(css, "border-radius: 4px;") {
		t.Errorf("stylesheet missing style variable:\n%s", css)
	}

	svg := readOutput(t, outputDir, "material", "normal", "checkbox.svg")
	if !strings.Contains(svg, "#1de9b6") {
		t.Errorf("resource not recolored:\n%s", svg)
	}
}

func TestGenerateService_Generate_SkipsUnchanged(t *testing.T) {
	svc, _, _ := newTestServices(t)

	if _, err := svc.Generate.Generate(GenerateOptions{Style: "material"}); err != nil {
		t.Fatal(err)
	}
	result, err := svc.Generate.Generate(GenerateOptions{Style: "material"})
	if err != nil {
		t.Fatal(err)
	}
	if result.Written != 0 || result.Skipped != 2 {
		t.Errorf("second run Written/Skipped = %d/%d, want 0/2", result.Written, result.Skipped)
	}

	forced, err := svc.Generate.Generate(GenerateOptions{Style: "material", Force: true})
	if err != nil {
		t.Fatal(err)
	}
	if forced.Written != 2 {
		t.Errorf("forced run Written = %d, want 2", forced.Written)
	}
}

func TestGenerateService_Generate_Overrides(t *testing.T) {
	svc, _, outputDir := newTestServices(t)

	_, err := svc.Generate.Generate(GenerateOptions{
		Style:     "material",
		Overrides: map[string]string{"primaryColor": "#ff0000"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	css := readOutput(t, outputDir, "material", "material.css")
	if !strings.Contains(css, "color: #ff0000;") {
		t.Errorf("override not applied to stylesheet:\n%s", css)
	}
}

func TestGenerateService_Palette(t *testing.T) {
	svc, _, _ := newTestServices(t)

	p, err := svc.Generate.Palette("material", "", nil)
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	if p.Base != "#1de9b6" {
		t.Errorf("Base = %q, want #1de9b6", p.Base)
	}
	if got, ok := p.Color(palette.GroupActive, palette.RoleWindow); !ok || got != "#232629" {
		t.Errorf("active Window = %q (%v), want #232629", got, ok)
	}
}

func TestGenerateService_Clean(t *testing.T) {
	svc, stylesDir, outputDir := newTestServices(t)
	writeTestStyle(t, stylesDir, "second")

	for _, name := range []string{"material", "second"} {
		if _, err := svc.Generate.Generate(GenerateOptions{Style: name}); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := svc.Generate.Clean("material")
	if err != nil {
		t.Fatalf("Clean() error = %v", err)
	}
	if len(removed) != 1 || removed[0] != filepath.Join(outputDir, "material") {
		t.Errorf("removed = %v", removed)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "material")); !os.IsNotExist(err) {
		t.Error("material output directory still exists after Clean")
	}
	if _, err := os.Stat(filepath.Join(outputDir, "second")); err != nil {
		t.Error("Clean removed another style's outputs")
	}
}

func TestGenerateService_CleanAll(t *testing.T) {
	svc, stylesDir, outputDir := newTestServices(t)
	writeTestStyle(t, stylesDir, "second")

	for _, name := range []string{"material", "second"} {
		if _, err := svc.Generate.Generate(GenerateOptions{Style: name}); err != nil {
			t.Fatal(err)
		}
	}

	removed, err := svc.Generate.Clean("")
	if err != nil {
		t.Fatalf("Clean(\"\") error = %v", err)
	}
	if len(removed) != 2 {
		t.Errorf("removed %d directories, want 2: %v", len(removed), removed)
	}
	entries, _ := os.ReadDir(outputDir)
	if len(entries) != 0 {
		t.Errorf("output directory not empty after Clean: %v", entries)
	}
}

func TestGenerateService_Clean_UnknownStyle(t *testing.T) {
	svc, _, _ := newTestServices(t)

	if _, err := svc.Generate.Clean("nope"); err == nil {
		t.Fatal("Clean() should fail for an unknown style")
	}
}

func readOutput(t *testing.T, parts ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(parts...))
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	return string(data)
}
