package dashboard

import "strings"

// ResolveLocalizedValue selects the best translation for the provided locale
// and falls back to the supplied value. Keys are matched case-insensitively,
// and language-region pairs (`es-mx`) automatically fall back to their base
// language (`es`) when present.
func ResolveLocalizedValue(values map[string]string, locale, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	for _, candidate := range localeCandidates(locale) {
		if candidate == "" {
			continue
		}
		for key, value := range values {
			if strings.EqualFold(key, candidate) && value != "" {
				return value
			}
		}
	}
	if value, ok := values["default"]; ok && value != "" {
		return value
	}
	return fallback
}

// NameForLocale returns the display name for the requested locale with
// graceful fallback to the default name.
func (def TabDefinition) NameForLocale(locale string) string {
	return ResolveLocalizedValue(def.NameLocalized, locale, def.Name)
}

// DescriptionForLocale returns the localized description if available.
func (def TabDefinition) DescriptionForLocale(locale string) string {
	return ResolveLocalizedValue(def.DescriptionLocalized, locale, def.Description)
}

// LocalizeDefinitions resolves every definition's display strings for the
// locale, returning copies suitable for handing to the page shell.
func LocalizeDefinitions(defs []TabDefinition, locale string) []TabDefinition {
	if locale == "" {
		return defs
	}
	localized := make([]TabDefinition, len(defs))
	for i, def := range defs {
		def.Name = def.NameForLocale(locale)
		def.Description = def.DescriptionForLocale(locale)
		localized[i] = def
	}
	return localized
}

// ParseAcceptLanguage extracts the first language tag from an Accept-Language
// header, lowercased and stripped of quality parameters.
func ParseAcceptLanguage(header string) string {
	for _, token := range strings.Split(header, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if idx := strings.Index(token, ";"); idx >= 0 {
			token = token[:idx]
		}
		if token != "" {
			return strings.ToLower(token)
		}
	}
	return ""
}

func localeCandidates(locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return []string{"default"}
	}
	candidates := []string{locale}
	if idx := strings.Index(locale, "-"); idx > 0 {
		candidates = append(candidates, locale[:idx])
	}
	candidates = append(candidates, "default")
	return candidates
}

func normalizeLocale(locale string) string {
	return strings.TrimSpace(strings.ToLower(locale))
}
