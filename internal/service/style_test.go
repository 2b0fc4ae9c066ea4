package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/styleforge/styleforge/internal/registry"
)

func TestStyleService_List(t *testing.T) {
	svc, stylesDir, _ := newTestServices(t)

	// Add a broken style next to the healthy one
	if err := os.MkdirAll(filepath.Join(stylesDir, "broken"), 0o755); err != nil {
		t.Fatal(err)
	}

	infos, err := svc.Style.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("len(infos) = %d, want 2", len(infos))
	}

	// Sorted by name: broken, material
	if infos[0].Name != "broken" || infos[0].Problem == "" {
		t.Errorf("infos[0] = %+v, want broken style with Problem set", infos[0])
	}

	m := infos[1]
	if m.Name != "material" || m.Problem != "" {
		t.Fatalf("infos[1] = %+v", m)
	}
	if m.Title != "Material" || m.DefaultTheme != "dark_teal" || !m.HasTemplate {
		t.Errorf("material info = %+v", m)
	}
	if len(m.Themes) != 2 {
		t.Errorf("Themes = %v", m.Themes)
	}
}

func TestStyleService_Load(t *testing.T) {
	svc, _, _ := newTestServices(t)

	st, err := svc.Style.Load("material")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if st.Definition.Name != "Material" {
		t.Errorf("Definition.Name = %q", st.Definition.Name)
	}

	_, err = svc.Style.Load("missing")
	if !errors.Is(err, registry.ErrUnknownStyle) {
		t.Errorf("Load error = %v, want ErrUnknownStyle", err)
	}
}

func TestStyleService_Health_Healthy(t *testing.T) {
	svc, _, _ := newTestServices(t)

	health, err := svc.Style.Health("material")
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if !health.Healthy() {
		t.Errorf("Problems = %v, want none", health.Problems)
	}
	if health.ThemeCount != 2 || health.ResourceCount != 1 || health.FontCount != 0 {
		t.Errorf("counts = %+v", health)
	}
}

func TestStyleService_Health_UnknownStyle(t *testing.T) {
	svc, _, _ := newTestServices(t)

	_, err := svc.Style.Health("missing")
	if !errors.Is(err, registry.ErrUnknownStyle) {
		t.Errorf("Health error = %v, want ErrUnknownStyle", err)
	}
}

func TestStyleService_Health_Findings(t *testing.T) {
	svc, stylesDir, _ := newTestServices(t)
	dir := filepath.Join(stylesDir, "material")

	// Break things: missing template file, missing default theme,
	// a resource variable no theme defines, and a malformed theme.
	if err := os.Remove(filepath.Join(dir, "material.css.template")); err != nil {
		t.Fatal(err)
	}
	def := strings.Replace(testDefinition, `"dark_teal"`, `"nonexistent"`, 1)
	def = strings.ReplaceAll(def, `"primaryColor"`, `"mysteryColor"`)
	if err := os.WriteFile(filepath.Join(dir, "material.json"), []byte(def), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "themes", "bad.xml"), []byte("<resources><color>"), 0o644); err != nil {
		t.Fatal(err)
	}

	health, err := svc.Style.Health("material")
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if health.Healthy() {
		t.Fatal("expected problems")
	}

	findings := strings.Join(health.Problems, "\n")
	for _, want := range []string{
		`default theme "nonexistent" has no theme file`,
		"mysteryColor",
		`theme "bad"`,
		`stylesheet template "material.css.template" not found`,
	} {
		if !strings.Contains(findings, want) {
			t.Errorf("missing finding %q in:\n%s", want, findings)
		}
	}
}

func TestStyleService_Health_BrokenDefinition(t *testing.T) {
	svc, stylesDir, _ := newTestServices(t)
	if err := os.WriteFile(filepath.Join(stylesDir, "material", "material.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}

	health, err := svc.Style.Health("material")
	if err != nil {
		t.Fatalf("Health should report a broken definition as a finding, got %v", err)
	}
	if health.Healthy() {
		t.Error("expected a problem for the broken definition")
	}
}

func TestStyleService_Health_DeclaredStatesWithoutSVGs(t *testing.T) {
	svc, stylesDir, _ := newTestServices(t)
	if err := os.Remove(filepath.Join(stylesDir, "material", "resources", "checkbox.svg")); err != nil {
		t.Fatal(err)
	}

	health, err := svc.Style.Health("material")
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	findings := strings.Join(health.Problems, "\n")
	if !strings.Contains(findings, "no SVG resource templates") {
		t.Errorf("missing finding about absent SVGs:\n%s", findings)
	}
}
