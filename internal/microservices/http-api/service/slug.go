package service

import (
	"regexp"
	"strings"
)

var (
	nonAlnum   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash  = regexp.MustCompile(`-{2,}`)
	validSlug  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	maxSlugLen = 80
)

/* helper: generate slug-like string from a display name */
func generateSlug(name, fallback string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	// replace spaces and underscores with dash
	s = strings.NewReplacer(" ", "-", "_", "-").Replace(s)
	// remove non-alnum/dash
	s = nonAlnum.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallback
	}
	if len(s) > maxSlugLen {
		s = strings.TrimRight(s[:maxSlugLen], "-")
	}
	return s
}

// normalizeSlug returns the explicit slug when given, otherwise one derived from name.
func normalizeSlug(explicit, name, fallback string) (string, error) {
	if strings.TrimSpace(explicit) == "" {
		return generateSlug(name, fallback), nil
	}
	s := strings.ToLower(strings.TrimSpace(explicit))
	if !validSlug.MatchString(s) || len(s) > maxSlugLen {
		return "", invalid("slug %q must be lowercase letters, digits and dashes", explicit)
	}
	return s, nil
}
