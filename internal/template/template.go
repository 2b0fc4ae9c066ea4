// Package template expands stylesheet templates.
//
// Templates contain {{variableName}} placeholders and filter expressions
// such as {{primaryColor|opacity(0.2)}}. Variables resolve through a
// lookup function; an unresolved variable expands to the empty string and
// is reported as a warning rather than failing the whole expansion.
package template

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/styleforge/styleforge/internal/colorutil"
)

// Expansion errors
var (
	ErrUnknownFilter   = errors.New("unknown filter")
	ErrInvalidArgument = errors.New("invalid filter argument")
)

var (
	placeholderRe = regexp.MustCompile(`\{\{(.*?)\}\}`)
	filterRe      = regexp.MustCompile(`^(\w+)\((.*)\)$`)
)

// Warning describes a placeholder that could not be fully resolved.
type Warning struct {
	// Placeholder is the inner text of the offending {{...}} expression
	Placeholder string
	// Message describes the problem
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("{{%s}}: %s", w.Placeholder, w.Message)
}

// Result is the outcome of a template expansion.
type Result struct {
	// Output is the expanded template text
	Output string
	// Warnings lists placeholders that resolved to the empty string
	Warnings []Warning
}

// Resolver expands templates against a variable lookup function.
type Resolver struct {
	lookup func(name string) (string, bool)
}

// NewResolver creates a Resolver. The lookup function returns the value of
// a variable and whether it exists.
func NewResolver(lookup func(name string) (string, bool)) *Resolver {
	return &Resolver{lookup: lookup}
}

// Expand replaces all placeholders in input. Unresolved variables expand
// to "" and are collected as warnings; a malformed or unknown filter
// aborts the expansion with an error.
func (r *Resolver) Expand(input string) (Result, error) {
	result := Result{}
	var expandErr error

	result.Output = placeholderRe.ReplaceAllStringFunc(input, func(match string) string {
		if expandErr != nil {
			return match
		}
		inner := match[2 : len(match)-2]

		replacement, warning, err := r.expandOne(inner)
		if err != nil {
			expandErr = err
			return match
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, Warning{
				Placeholder: inner,
				Message:     warning,
			})
		}
		return replacement
	})

	if expandErr != nil {
		return Result{}, expandErr
	}
	return result, nil
}

// expandOne resolves a single placeholder body. A filter expression is
// only recognized when the body ends with ')'; anything else is treated
// as a plain variable name.
func (r *Resolver) expandOne(inner string) (value, warning string, err error) {
	if !strings.HasSuffix(inner, ")") || !strings.Contains(inner, "|") {
		name := strings.TrimSpace(inner)
		v, ok := r.lookup(name)
		if !ok {
			return "", fmt.Sprintf("variable %q is not defined", name), nil
		}
		return v, "", nil
	}

	parts := strings.SplitN(inner, "|", 2)
	name := strings.TrimSpace(parts[0])
	filterExpr := strings.TrimSpace(parts[1])

	v, ok := r.lookup(name)
	if !ok {
		// Skip the filter entirely; there is no value to transform.
		return "", fmt.Sprintf("variable %q is not defined", name), nil
	}

	out, err := applyFilter(v, filterExpr)
	if err != nil {
		return "", "", err
	}
	return out, "", nil
}

func applyFilter(value, expr string) (string, error) {
	m := filterRe.FindStringSubmatch(expr)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, expr)
	}
	name := m[1]
	args := splitArgs(m[2])

	switch name {
	case "opacity":
		// Compatibility behavior: an unparseable argument means fully opaque.
		opacity := 1.0
		if len(args) > 0 {
			if f, err := strconv.ParseFloat(args[0], 64); err == nil {
				opacity = f
			}
		}
		return colorutil.WithOpacity(value, opacity), nil

	case "lighten", "darken", "saturate", "desaturate":
		amount, err := parseFraction(name, args)
		if err != nil {
			return "", err
		}
		switch name {
		case "lighten":
			return colorutil.Lighten(value, amount)
		case "darken":
			return colorutil.Darken(value, amount)
		case "saturate":
			return colorutil.Saturate(value, amount)
		default:
			return colorutil.Desaturate(value, amount)
		}

	case "mix":
		if len(args) == 0 || args[0] == "" {
			return "", fmt.Errorf("%w: mix requires a color argument", ErrInvalidArgument)
		}
		fraction := 0.5
		if len(args) > 1 {
			f, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return "", fmt.Errorf("%w: mix fraction %q", ErrInvalidArgument, args[1])
			}
			fraction = f
		}
		return colorutil.Mix(value, args[0], fraction)

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, name)
	}
}

func parseFraction(filter string, args []string) (float64, error) {
	if len(args) == 0 || args[0] == "" {
		return 0, fmt.Errorf("%w: %s requires an amount", ErrInvalidArgument, filter)
	}
	f, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s amount %q", ErrInvalidArgument, filter, args[0])
	}
	return f, nil
}

func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
