// Package csscolor parses CSS color strings into gg colors.
//
// Supported forms are hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb()/rgba(),
// hsl()/hsla(), oklch(), a handful of named colors, and var(--name)
// references resolved against a Theme. Both the legacy comma syntax and
// the space syntax with a "/ alpha" suffix are accepted.
package csscolor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned when a string is not a color this package understands.
var ErrInvalidColor = errors.New("csscolor: invalid color")

// ErrUndefinedVar is returned when a var() reference has no theme value and no fallback.
var ErrUndefinedVar = errors.New("csscolor: undefined variable")

// maxVarDepth bounds nested var() expansion (a theme value may reference another variable).
const maxVarDepth = 8

var named = map[string]gg.RGBA{
	"black":       gg.Black,
	"white":       gg.White,
	"red":         gg.Red,
	"green":       gg.RGB(0, 128.0/255, 0),
	"lime":        gg.Green,
	"blue":        gg.Blue,
	"yellow":      gg.Yellow,
	"cyan":        gg.Cyan,
	"magenta":     gg.Magenta,
	"gray":        gg.RGB(128.0/255, 128.0/255, 128.0/255),
	"grey":        gg.RGB(128.0/255, 128.0/255, 128.0/255),
	"transparent": gg.Transparent,
}

// Parse converts a CSS color string to gg.RGBA, expanding var() references
// through theme. theme may be nil when the string contains no references.
func Parse(s string, theme Theme) (gg.RGBA, error) {
	expanded, err := expandVars(strings.TrimSpace(s), theme, 0)
	if err != nil {
		return gg.RGBA{}, err
	}
	src := strings.ToLower(strings.TrimSpace(expanded))
	if src == "" {
		return gg.RGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if src[0] == '#' {
		return parseHex(src)
	}
	if c, ok := named[src]; ok {
		return c, nil
	}

	open := strings.IndexByte(src, '(')
	if open < 0 || !strings.HasSuffix(src, ")") {
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	fn := strings.TrimSpace(src[:open])
	args, alpha, err := splitArgs(src[open+1 : len(src)-1])
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}

	var c gg.RGBA
	switch fn {
	case "rgb", "rgba":
		c, err = rgbColor(args)
	case "hsl", "hsla":
		c, err = hslColor(args)
	case "oklch":
		c, err = oklchColor(args)
	default:
		err = fmt.Errorf("unsupported function %q", fn)
	}
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	if alpha != "" {
		a, err := parseAlpha(alpha)
		if err != nil {
			return gg.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
		}
		c.A = a
	}
	return c, nil
}

// MustParse is like Parse but panics on error.
// Use only for compile-time constant colors.
func MustParse(s string, theme Theme) gg.RGBA {
	c, err := Parse(s, theme)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha rewrites a color string so that it carries the given alpha:
// hsl(...) becomes hsla(..., a), rgb(...) becomes rgba(..., a), oklch(...)
// gains a "/ a" suffix and hex colors gain an alpha byte. The second result
// is false when s is in a form that cannot be rewritten (named colors,
// strings that already carry alpha); callers should then apply the alpha
// to the parsed color instead.
func WithAlpha(s string, alpha float64) (string, bool) {
	src := strings.TrimSpace(s)
	a := strconv.FormatFloat(clamp01(alpha), 'f', -1, 64)
	lower := strings.ToLower(src)

	switch {
	case strings.HasPrefix(lower, "hsl(") && strings.HasSuffix(src, ")"):
		return "hsla(" + appendAlpha(src[len("hsl("):len(src)-1], a) + ")", true
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(src, ")"):
		return "rgba(" + appendAlpha(src[len("rgb("):len(src)-1], a) + ")", true
	case strings.HasPrefix(lower, "oklch(") && strings.HasSuffix(src, ")"):
		inner := src[len("oklch(") : len(src)-1]
		if strings.Contains(inner, "/") {
			return src, false
		}
		return "oklch(" + strings.TrimSpace(inner) + " / " + a + ")", true
	case strings.HasPrefix(src, "#"):
		c, err := parseHex(lower)
		if err != nil || c.A != 1 {
			return src, false
		}
		return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(clamp01(alpha))), true
	}
	return src, false
}

// appendAlpha adds an alpha component using the separator style of inner:
// commas when the arguments are comma separated, " / " otherwise.
func appendAlpha(inner, a string) string {
	inner = strings.TrimSpace(inner)
	if hasTopLevel(inner, ',') {
		return inner + ", " + a
	}
	return inner + " / " + a
}

// expandVars replaces every var(--name[, fallback]) in s.
func expandVars(s string, theme Theme, depth int) (string, error) {
	if !strings.Contains(s, "var(") {
		return s, nil
	}
	if depth >= maxVarDepth {
		return "", fmt.Errorf("%w: var() nesting too deep in %q", ErrInvalidColor, s)
	}

	var b strings.Builder
	for {
		i := strings.Index(s, "var(")
		if i < 0 {
			b.WriteString(s)
			break
		}
		b.WriteString(s[:i])
		end := matchParen(s, i+len("var"))
		if end < 0 {
			return "", fmt.Errorf("%w: unbalanced var() in %q", ErrInvalidColor, s)
		}
		body := s[i+len("var(") : end]
		name, fallback, hasFallback := strings.Cut(body, ",")
		name = strings.TrimPrefix(strings.TrimSpace(name), "--")

		val, ok := theme.Lookup(name)
		switch {
		case ok:
		case hasFallback:
			val = strings.TrimSpace(fallback)
		default:
			return "", fmt.Errorf("%w: --%s", ErrUndefinedVar, name)
		}
		val, err := expandVars(val, theme, depth+1)
		if err != nil {
			return "", err
		}
		b.WriteString(val)
		s = s[end+1:]
	}
	return b.String(), nil
}

// matchParen returns the index of the parenthesis closing the one at open,
// or -1 when unbalanced.
func matchParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func hasTopLevel(s string, sep byte) bool {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case sep:
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

// splitArgs splits function arguments into components and an optional alpha.
// "a, b, c, d" and "a b c / d" both yield [a b c] and "d".
func splitArgs(inner string) (args []string, alpha string, err error) {
	main, slashAlpha, hasSlash := strings.Cut(inner, "/")
	fields := strings.FieldsFunc(main, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if hasSlash {
		alpha = strings.TrimSpace(slashAlpha)
		if alpha == "" {
			return nil, "", errors.New("missing alpha after '/'")
		}
	}
	switch len(fields) {
	case 3:
	case 4:
		if hasSlash {
			return nil, "", errors.New("alpha given twice")
		}
		alpha = fields[3]
		fields = fields[:3]
	default:
		return nil, "", fmt.Errorf("want 3 or 4 components, got %d", len(fields))
	}
	return fields, alpha, nil
}

func rgbColor(args []string) (gg.RGBA, error) {
	var ch [3]float64
	for i, arg := range args {
		if p, ok := strings.CutSuffix(arg, "%"); ok {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return gg.RGBA{}, err
			}
			ch[i] = clamp01(v / 100)
			continue
		}
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return gg.RGBA{}, err
		}
		ch[i] = clamp01(v / 255)
	}
	return gg.RGB(ch[0], ch[1], ch[2]), nil
}

func hslColor(args []string) (gg.RGBA, error) {
	h, err := parseHue(args[0])
	if err != nil {
		return gg.RGBA{}, err
	}
	s, err := parsePercent(args[1])
	if err != nil {
		return gg.RGBA{}, err
	}
	l, err := parsePercent(args[2])
	if err != nil {
		return gg.RGBA{}, err
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, clamp01(s), clamp01(l))), nil
}

func oklchColor(args []string) (gg.RGBA, error) {
	var l float64
	if p, ok := strings.CutSuffix(args[0], "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return gg.RGBA{}, err
		}
		l = v / 100
	} else {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return gg.RGBA{}, err
		}
		l = v
	}
	c, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return gg.RGBA{}, err
	}
	h, err := parseHue(args[2])
	if err != nil {
		return gg.RGBA{}, err
	}
	return fromColorful(colorful.OkLch(clamp01(l), math.Max(c, 0), h)), nil
}

func parseHex(s string) (gg.RGBA, error) {
	c, err := gg.ParseHex(s)
	if err != nil {
		return gg.RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return c, nil
}

// parseHue reads an angle in degrees; deg, rad, grad and turn units are accepted.
func parseHue(s string) (float64, error) {
	units := []struct {
		suffix string
		scale  float64
	}{
		{"grad", 0.9},
		{"deg", 1},
		{"rad", 180 / math.Pi},
		{"turn", 360},
	}
	for _, u := range units {
		if v, ok := strings.CutSuffix(s, u.suffix); ok {
			f, err := strconv.ParseFloat(v, 64)
			return f * u.scale, err
		}
	}
	return strconv.ParseFloat(s, 64)
}

// parsePercent reads "50%" (or a bare "50", as Tailwind tokens sometimes
// omit the sign) into 0.5.
func parsePercent(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, err
	}
	return v / 100, nil
}

func parseAlpha(s string) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return clamp01(v / 100), err
	}
	v, err := strconv.ParseFloat(s, 64)
	return clamp01(v), err
}

func fromColorful(c colorful.Color) gg.RGBA {
	c = c.Clamped()
	return gg.RGB(c.R, c.G, c.B)
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func to8(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}
