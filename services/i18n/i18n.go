package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
)

//go:embed *.json
var fs embed.FS

// translations stores flattened keys: "en" -> "nav.home" -> "Home"
var (
	translations = make(map[string]map[string]string)
	mutex        sync.RWMutex
	defaultLang  = "en"
)

// Supported lists the locales shipped with the page
var Supported = []string{"en", "es"}

// IsSupported reports whether lang has an embedded catalog
func IsSupported(lang string) bool {
	return slices.Contains(Supported, lang)
}

// SetDefault changes the fallback locale. Unsupported values are ignored.
func SetDefault(lang string) {
	if !IsSupported(lang) {
		log.Printf("[WARNING] Unsupported default locale %q, keeping %q", lang, defaultLang)
		return
	}
	mutex.Lock()
	defaultLang = lang
	mutex.Unlock()
}

// Default returns the fallback locale
func Default() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return defaultLang
}

// Load initializes the translations from the embedded JSON files.
func Load() error {
	mutex.Lock()
	defer mutex.Unlock()

	entries, err := fs.ReadDir(".")
	if err != nil {
		return fmt.Errorf("failed to read embedded locales: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		lang := strings.TrimSuffix(entry.Name(), ".json")
		content, err := fs.ReadFile(entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", entry.Name(), err)
		}

		var result map[string]any
		if err := json.Unmarshal(content, &result); err != nil {
			return fmt.Errorf("failed to unmarshal locale %s: %w", entry.Name(), err)
		}

		flat := make(map[string]string)
		flatten("", result, flat)
		translations[lang] = flat
		log.Printf("[INFO] Loaded locale: %s (%d keys)", lang, len(flat))
	}

	return nil
}

// flatten recursively flattens a nested map into dot-notation keys.
func flatten(prefix string, nested map[string]any, result map[string]string) {
	for k, v := range nested {
		newKey := k
		if prefix != "" {
			newKey = prefix + "." + k
		}

		switch child := v.(type) {
		case map[string]any:
			flatten(newKey, child, result)
		case string:
			result[newKey] = child
		default:
			result[newKey] = fmt.Sprintf("%v", child)
		}
	}
}

// T retrieves a translation for the given key using the language from the context.
// Missing keys fall back to the default language, then to the key itself.
// Named placeholders such as {name} are replaced from args.
func T(ctx context.Context, key string, args ...map[string]any) string {
	return Translate(GetLocale(ctx), key, args...)
}

// Translate retrieves a translation for a specific language code.
func Translate(lang, key string, args ...map[string]any) string {
	mutex.RLock()
	defer mutex.RUnlock()

	if trans, ok := translations[lang]; ok {
		if val, ok := trans[key]; ok {
			return format(val, args...)
		}
	}

	if lang != defaultLang {
		if trans, ok := translations[defaultLang]; ok {
			if val, ok := trans[key]; ok {
				return format(val, args...)
			}
		}
	}

	return key
}

// format replaces {var} placeholders with values from args if present.
func format(text string, args ...map[string]any) string {
	if len(args) == 0 {
		return text
	}

	for k, v := range args[0] {
		text = strings.ReplaceAll(text, "{"+k+"}", fmt.Sprintf("%v", v))
	}
	return text
}

type contextKey string

const LocaleContextKey contextKey = "locale"

// WithLocale returns a copy of ctx carrying lang
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, LocaleContextKey, lang)
}

// GetLocale extracts the locale set by the locale middleware, falling back to the default.
func GetLocale(ctx context.Context) string {
	if val, ok := ctx.Value(LocaleContextKey).(string); ok && val != "" {
		return val
	}
	return Default()
}
