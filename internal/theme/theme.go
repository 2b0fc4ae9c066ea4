// Package theme parses theme color definition files.
//
// A theme file is an XML document with a <resources> root carrying a
// "dark" attribute and a sequence of <color name="...">#hex</color>
// children. Theme colors overlay style variables during resolution.
package theme

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrMalformed indicates a structurally invalid theme file.
var ErrMalformed = errors.New("malformed theme file")

// Theme is a parsed theme: a named set of color variables.
type Theme struct {
	// Name is the theme name (the file name without extension)
	Name string
	// Dark reports whether the theme declares itself as a dark theme
	Dark bool
	// Colors maps color variable names to hex color values
	Colors map[string]string
}

type xmlColor struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlResources struct {
	XMLName xml.Name   `xml:"resources"`
	Dark    string     `xml:"dark,attr"`
	Colors  []xmlColor `xml:"color"`
	// Unknown collects child elements that are not <color> so they can
	// be rejected instead of silently dropped
	Unknown []xmlUnknown `xml:",any"`
}

type xmlUnknown struct {
	XMLName xml.Name
}

// Load parses the theme file at path. The theme name is derived from the
// file name.
func Load(path string) (Theme, error) {
	file, err := os.Open(path)
	if err != nil {
		return Theme{}, fmt.Errorf("cannot open theme file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(file, name)
}

// Parse parses theme XML from r into a Theme with the given name.
func Parse(r io.Reader, name string) (Theme, error) {
	var doc xmlResources
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return Theme{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if len(doc.Unknown) > 0 {
		return Theme{}, fmt.Errorf("%w: expected tag <color> instead of <%s>",
			ErrMalformed, doc.Unknown[0].XMLName.Local)
	}

	t := Theme{
		Name:   name,
		Dark:   doc.Dark == "1",
		Colors: make(map[string]string, len(doc.Colors)),
	}

	for _, c := range doc.Colors {
		if c.Name == "" {
			return Theme{}, fmt.Errorf("%w: 'name' attribute missing in <color> tag", ErrMalformed)
		}
		value := strings.TrimSpace(c.Value)
		if value == "" {
			return Theme{}, fmt.Errorf("%w: text of <color> tag %q is empty", ErrMalformed, c.Name)
		}
		t.Colors[c.Name] = value
	}

	return t, nil
}
