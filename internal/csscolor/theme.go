package csscolor

import "strings"

// Theme maps CSS custom property names (without the leading "--") to their
// values. Values follow the shadcn/Tailwind token convention of bare HSL
// components ("221 83% 53%") so that "hsl(var(--primary))" resolves.
type Theme map[string]string

// Lookup returns the value of a custom property. The name may be given with
// or without its "--" prefix.
func (t Theme) Lookup(name string) (string, bool) {
	v, ok := t[strings.TrimPrefix(name, "--")]
	return v, ok
}

// With returns a copy of t with the given property set.
func (t Theme) With(name, value string) Theme {
	out := make(Theme, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out[strings.TrimPrefix(name, "--")] = value
	return out
}

// DefaultTheme returns the light theme tokens referenced by the default chart palette.
func DefaultTheme() Theme {
	return Theme{
		"background":  "0 0% 100%",
		"foreground":  "222.2 84% 4.9%",
		"muted":       "210 40% 96.1%",
		"border":      "214.3 31.8% 91.4%",
		"primary":     "221.2 83.2% 53.3%",
		"secondary":   "262.1 83.3% 57.8%",
		"accent":      "173 80% 40%",
		"success":     "142.1 70.6% 45.3%",
		"warning":     "37.7 92.1% 50.2%",
		"destructive": "0 84.2% 60.2%",
		"info":        "198.6 88.7% 48.4%",
		"chart-1":     "12 76% 61%",
		"chart-2":     "173 58% 39%",
		"chart-3":     "197 37% 24%",
		"chart-4":     "43 74% 66%",
		"chart-5":     "27 87% 67%",
	}
}

// DarkTheme returns the dark counterpart of DefaultTheme.
func DarkTheme() Theme {
	return DefaultTheme().
		With("background", "222.2 84% 4.9%").
		With("foreground", "210 40% 98%").
		With("muted", "217.2 32.6% 17.5%").
		With("border", "217.2 32.6% 17.5%").
		With("chart-1", "220 70% 50%").
		With("chart-2", "160 60% 45%").
		With("chart-3", "30 80% 55%").
		With("chart-4", "280 65% 60%").
		With("chart-5", "340 75% 55%")
}
