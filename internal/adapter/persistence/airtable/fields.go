package airtable

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"bemu_storefront/internal/domain/entities"
)

// escapeFormula quotes a value for use inside a single-quoted Airtable formula string.
func escapeFormula(v string) string {
	return strings.ReplaceAll(v, "'", `\'`)
}

func fieldString(f map[string]any, name string) string {
	switch v := f[name].(type) {
	case string:
		return v
	case []any:
		// lookup and rollup fields arrive as arrays
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

func fieldFloat(f map[string]any, name string) float64 {
	switch v := f[name].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		n, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n
	}
	return 0
}

func fieldInt(f map[string]any, name string) int {
	return int(fieldFloat(f, name))
}

func fieldBool(f map[string]any, name string, def bool) bool {
	v, ok := f[name].(bool)
	if !ok {
		return def
	}
	return v
}

func fieldTime(f map[string]any, name, fallback string) time.Time {
	for _, raw := range []string{fieldString(f, name), fallback} {
		if raw == "" {
			continue
		}
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// fieldVariants accepts an array or a comma/newline separated string.
func fieldVariants(f map[string]any, name string) []string {
	var out []string
	switch v := f[name].(type) {
	case []any:
		for _, x := range v {
			if s, ok := x.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
	case string:
		for _, s := range strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == '\n' }) {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func fieldLinks(f map[string]any, name string) []string {
	raw, _ := f[name].([]any)
	out := make([]string, 0, len(raw))
	for _, x := range raw {
		if s, ok := x.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func fieldImages(f map[string]any, name string) []entities.ProductImage {
	raw, _ := f[name].([]any)
	out := make([]entities.ProductImage, 0, len(raw))
	for _, x := range raw {
		a, ok := x.(map[string]any)
		if !ok {
			continue
		}
		img := entities.ProductImage{
			ID:       fieldString(a, "id"),
			URL:      fieldString(a, "url"),
			Filename: fieldString(a, "filename"),
			Width:    fieldInt(a, "width"),
			Height:   fieldInt(a, "height"),
		}
		if th, ok := a["thumbnails"].(map[string]any); ok {
			img.Thumbnails = &entities.ImageThumbnails{
				Small: thumbnail(th, "small"),
				Large: thumbnail(th, "large"),
				Full:  thumbnail(th, "full"),
			}
		}
		out = append(out, img)
	}
	return out
}

func thumbnail(th map[string]any, size string) entities.ImageThumbnail {
	m, _ := th[size].(map[string]any)
	return entities.ImageThumbnail{
		URL:    fieldString(m, "url"),
		Width:  fieldInt(m, "width"),
		Height: fieldInt(m, "height"),
	}
}

var slugDimensions = regexp.MustCompile(`(\d+)x(\d+)$`)

// gridDimensions reads "Grid Width"/"Grid Height" or falls back to a trailing NxM in the slug.
func gridDimensions(f map[string]any, slug string) (int, int) {
	w, h := fieldInt(f, "Grid Width"), fieldInt(f, "Grid Height")
	if w > 0 && h > 0 {
		return w, h
	}
	m := slugDimensions.FindStringSubmatch(strings.ToLower(strings.TrimSpace(slug)))
	if m == nil {
		return 0, 0
	}
	w, _ = strconv.Atoi(m[1])
	h, _ = strconv.Atoi(m[2])
	return w, h
}
