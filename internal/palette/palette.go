// Package palette derives widget palette colors from a style's palette
// spec and the current theme's color variables.
package palette

import (
	"sort"

	"github.com/styleforge/styleforge/internal/colorutil"
	"github.com/styleforge/styleforge/internal/style"
)

// Group is a palette color group.
type Group string

// Palette color groups
const (
	GroupActive   Group = "active"
	GroupDisabled Group = "disabled"
	GroupInactive Group = "inactive"
)

// Groups returns all palette color groups in canonical order.
func Groups() []Group {
	return []Group{GroupActive, GroupDisabled, GroupInactive}
}

// Role is a palette color role.
type Role string

// Palette color roles
const (
	RoleWindowText      Role = "WindowText"
	RoleButton          Role = "Button"
	RoleLight           Role = "Light"
	RoleMidlight        Role = "Midlight"
	RoleDark            Role = "Dark"
	RoleMid             Role = "Mid"
	RoleText            Role = "Text"
	RoleBrightText      Role = "BrightText"
	RoleButtonText      Role = "ButtonText"
	RoleBase            Role = "Base"
	RoleWindow          Role = "Window"
	RoleShadow          Role = "Shadow"
	RoleHighlight       Role = "Highlight"
	RoleHighlightedText Role = "HighlightedText"
	RoleLink            Role = "Link"
	RoleLinkVisited     Role = "LinkVisited"
	RoleAlternateBase   Role = "AlternateBase"
	RoleToolTipBase     Role = "ToolTipBase"
	RoleToolTipText     Role = "ToolTipText"
	RolePlaceholderText Role = "PlaceholderText"
)

var roleNames = map[string]Role{
	"WindowText":      RoleWindowText,
	"Button":          RoleButton,
	"Light":           RoleLight,
	"Midlight":        RoleMidlight,
	"Dark":            RoleDark,
	"Mid":             RoleMid,
	"Text":            RoleText,
	"BrightText":      RoleBrightText,
	"ButtonText":      RoleButtonText,
	"Base":            RoleBase,
	"Window":          RoleWindow,
	"Shadow":          RoleShadow,
	"Highlight":       RoleHighlight,
	"HighlightedText": RoleHighlightedText,
	"Link":            RoleLink,
	"LinkVisited":     RoleLinkVisited,
	"AlternateBase":   RoleAlternateBase,
	"ToolTipBase":     RoleToolTipBase,
	"ToolTipText":     RoleToolTipText,
	"PlaceholderText": RolePlaceholderText,
}

// RoleFromString converts a role name to a Role. The second return value
// is false for unknown names.
func RoleFromString(s string) (Role, bool) {
	r, ok := roleNames[s]
	return r, ok
}

// Palette holds resolved palette colors per group and role.
type Palette struct {
	// Base is the base color the palette derives from, "" when unset
	Base string
	// Colors maps group and role to a resolved hex color
	Colors map[Group]map[Role]string
}

// Color returns the resolved color for a group and role.
func (p Palette) Color(g Group, r Role) (string, bool) {
	roles, ok := p.Colors[g]
	if !ok {
		return "", false
	}
	c, ok := roles[r]
	return c, ok
}

// Roles returns the roles set for a group, sorted by name.
func (p Palette) Roles(g Group) []Role {
	roles := make([]Role, 0, len(p.Colors[g]))
	for r := range p.Colors[g] {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// IsZero reports whether the palette carries no colors at all.
func (p Palette) IsZero() bool {
	if p.Base != "" {
		return false
	}
	for _, roles := range p.Colors {
		if len(roles) > 0 {
			return false
		}
	}
	return true
}

// Generate resolves a palette spec against theme colors. The resolve
// function maps a color variable name to its value. Unknown role names
// and unresolvable or invalid colors are skipped.
func Generate(spec style.PaletteSpec, resolve func(name string) (string, bool)) Palette {
	p := Palette{Colors: map[Group]map[Role]string{}}

	if spec.BaseColor != "" {
		if c, ok := resolve(spec.BaseColor); ok && colorutil.IsValid(c) {
			p.Base = c
		}
	}

	for _, group := range Groups() {
		roles, ok := spec.Groups[string(group)]
		if !ok {
			continue
		}
		for roleName, variable := range roles {
			role, ok := RoleFromString(roleName)
			if !ok {
				continue
			}
			c, ok := resolve(variable)
			if !ok || !colorutil.IsValid(c) {
				continue
			}
			if p.Colors[group] == nil {
				p.Colors[group] = map[Role]string{}
			}
			p.Colors[group][role] = c
		}
	}

	return p
}
