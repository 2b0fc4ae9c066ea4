package theme

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleXML = `<resources dark="1">
  <color name="primaryColor">#1de9b6</color>
  <color name="primaryLightColor">#6effe8</color>
  <color name="secondaryColor">#232629</color>
</resources>`

func TestParse(t *testing.T) {
	th, err := Parse(strings.NewReader(sampleXML), "dark_teal")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if th.Name != "dark_teal" {
		t.Errorf("Name = %q, want dark_teal", th.Name)
	}
	if !th.Dark {
		t.Error("Dark = false, want true")
	}
	if len(th.Colors) != 3 {
		t.Errorf("len(Colors) = %d, want 3", len(th.Colors))
	}
	if got := th.Colors["primaryColor"]; got != "#1de9b6" {
		t.Errorf("Colors[primaryColor] = %q, want #1de9b6", got)
	}
}

func TestParse_LightTheme(t *testing.T) {
	tests := []struct {
		name string
		attr string
	}{
		{"zero", `dark="0"`},
		{"absent", ``},
		{"other value", `dark="true"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xml := `<resources ` + tt.attr + `><color name="a">#fff</color></resources>`
			th, err := Parse(strings.NewReader(xml), "light")
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if th.Dark {
				t.Error("Dark = true, want false")
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not xml", `{ "name": "nope" }`},
		{"missing name attribute", `<resources><color>#fff</color></resources>`},
		{"empty color value", `<resources><color name="primaryColor"></color></resources>`},
		{"whitespace color value", `<resources><color name="primaryColor">   </color></resources>`},
		{"unexpected child tag", `<resources dark="1"><shade name="primaryColor">#1de9b6</shade></resources>`},
		{"unexpected tag among colors", `<resources><color name="a">#fff</color><gradient name="b">#000</gradient></resources>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), "broken")
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Parse error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestParse_TrimsColorValues(t *testing.T) {
	xml := `<resources><color name="primaryColor">
  #1de9b6
</color></resources>`
	th, err := Parse(strings.NewReader(xml), "padded")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := th.Colors["primaryColor"]; got != "#1de9b6" {
		t.Errorf("Colors[primaryColor] = %q, want trimmed #1de9b6", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dark_teal.xml")
	if err := os.WriteFile(path, []byte(sampleXML), 0o644); err != nil {
		t.Fatal(err)
	}

	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if th.Name != "dark_teal" {
		t.Errorf("Name = %q, want dark_teal (derived from file name)", th.Name)
	}
	if !th.Dark {
		t.Error("Dark = false, want true")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xml"))
	if err == nil {
		t.Error("Load with missing file should return error")
	}
}
