package colorutil

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantHex string
		wantErr bool
	}{
		{"six digit", "#336699", "#336699", false},
		{"three digit", "#369", "#336699", false},
		{"alpha prefixed", "#80336699", "#336699", false},
		{"uppercase", "#AABBCC", "#aabbcc", false},
		{"surrounding whitespace", "  #336699  ", "#336699", false},
		{"missing hash", "336699", "", true},
		{"wrong length", "#12345", "", true},
		{"not a color", "tomato", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) expected error, got %v", tt.input, c.Hex())
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if c.Hex() != tt.wantHex {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, c.Hex(), tt.wantHex)
			}
		})
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{"#000000", "#fff", "#ff00ff00", "#AABBCC"}
	for _, s := range valid {
		if !IsValid(s) {
			t.Errorf("IsValid(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "red", "#12345", "rgba(0,0,0,1)", "0x336699"}
	for _, s := range invalid {
		if IsValid(s) {
			t.Errorf("IsValid(%q) = true, want false", s)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"#AABBCC", "#aabbcc"},
		{"#abc", "#aabbcc"},
		{"#80ff0000", "#ff0000"},
	}

	for _, tt := range tests {
		got, err := Normalize(tt.input)
		if err != nil {
			t.Fatalf("Normalize(%q) unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := Normalize("bogus"); err == nil {
		t.Error("Normalize with invalid input should return error")
	}
}

func TestWithOpacity(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		opacity float64
		want    string
	}{
		{"fifth", "#ff0000", 0.2, "#33ff0000"},
		{"half", "#ff0000", 0.5, "#7fff0000"},
		{"zero", "#ff0000", 0.0, "#00ff0000"},
		{"full", "#ff0000", 1.0, "#ffff0000"},
		{"clamped high", "#ff0000", 2.5, "#ffff0000"},
		{"clamped low", "#ff0000", -1.0, "#00ff0000"},
		{"no hash passthrough", "red", 0.5, "red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WithOpacity(tt.hex, tt.opacity)
			if got != tt.want {
				t.Errorf("WithOpacity(%q, %v) = %s, want %s", tt.hex, tt.opacity, got, tt.want)
			}
		})
	}
}

func TestLightenDarken(t *testing.T) {
	got, err := Lighten("#000000", 1.0)
	if err != nil {
		t.Fatalf("Lighten: %v", err)
	}
	if got != "#ffffff" {
		t.Errorf("Lighten(#000000, 1.0) = %s, want #ffffff", got)
	}

	got, err = Darken("#ffffff", 1.0)
	if err != nil {
		t.Fatalf("Darken: %v", err)
	}
	if got != "#000000" {
		t.Errorf("Darken(#ffffff, 1.0) = %s, want #000000", got)
	}

	// Zero amount keeps the color
	got, err = Lighten("#336699", 0)
	if err != nil {
		t.Fatalf("Lighten: %v", err)
	}
	if got != "#336699" {
		t.Errorf("Lighten(#336699, 0) = %s, want #336699", got)
	}

	if _, err := Lighten("nope", 0.5); err == nil {
		t.Error("Lighten with invalid color should return error")
	}
}

func TestDesaturate(t *testing.T) {
	// Fully desaturated pure red is mid gray
	got, err := Desaturate("#ff0000", 1.0)
	if err != nil {
		t.Fatalf("Desaturate: %v", err)
	}
	if got != "#808080" {
		t.Errorf("Desaturate(#ff0000, 1.0) = %s, want #808080", got)
	}
}

func TestSaturate_InvalidColor(t *testing.T) {
	if _, err := Saturate("bogus", 0.2); err == nil {
		t.Error("Saturate with invalid color should return error")
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		fraction float64
		want     string
	}{
		{"none", "#000000", "#ffffff", 0, "#000000"},
		{"all", "#000000", "#ffffff", 1, "#ffffff"},
		{"half", "#000000", "#ffffff", 0.5, "#808080"},
		{"clamped", "#000000", "#ffffff", 5, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mix(tt.a, tt.b, tt.fraction)
			if err != nil {
				t.Fatalf("Mix: %v", err)
			}
			if got != tt.want {
				t.Errorf("Mix(%s, %s, %v) = %s, want %s", tt.a, tt.b, tt.fraction, got, tt.want)
			}
		})
	}

	if _, err := Mix("bogus", "#ffffff", 0.5); err == nil {
		t.Error("Mix with invalid first color should return error")
	}
	if _, err := Mix("#ffffff", "bogus", 0.5); err == nil {
		t.Error("Mix with invalid second color should return error")
	}
}
