package template

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/mailgun/raymond/v2"
	"golang.org/x/text/language"

	"github.com/xaheen/xaheen/internal/naming"
)

// uiStrings is the lookup table behind the "t" helper. Keys missing from
// the selected language fall back to the provided default, then to the
// key itself.
var uiStrings = map[string]map[string]string{
	"en": {
		"generated.header":    "Generated by Xaheen. Do not edit by hand.",
		"generated.component": "Component",
		"generated.page":      "Page",
		"generated.service":   "Service",
		"compliance.title":    "Compliance Documentation",
		"compliance.ropa":     "Record of Processing Activities",
		"compliance.owner":    "Document owner",
		"compliance.review":   "Next review date",
	},
	"nb": {
		"generated.header":    "Generert av Xaheen. Skal ikke redigeres manuelt.",
		"generated.component": "Komponent",
		"generated.page":      "Side",
		"generated.service":   "Tjeneste",
		"compliance.title":    "Etterlevelsesdokumentasjon",
		"compliance.ropa":     "Protokoll over behandlingsaktiviteter",
		"compliance.owner":    "Dokumenteier",
		"compliance.review":   "Neste gjennomgang",
	},
}

var supportedLanguages = []language.Tag{
	language.English,         // fallback
	language.MustParse("nb"), // Norwegian Bokmål
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// matchLanguage maps an arbitrary locale string ("nb-NO", "en-US", ...)
// onto one of the supported UI-string languages.
func matchLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return "en"
	}
	_, index, _ := languageMatcher.Match(tag)
	if index == 1 {
		return "nb"
	}
	return "en"
}

// defaultHelpers builds the default helper set. Helpers close over the
// registry so the localized lookup follows the configured locale.
func defaultHelpers(r *Registry) map[string]interface{} {
	return map[string]interface{}{
		// Case conversion
		"pascalCase": func(value interface{}) string {
			return naming.ToPascalCase(raymond.Str(value))
		},
		"camelCase": func(value interface{}) string {
			return naming.ToCamelCase(raymond.Str(value))
		},
		"kebabCase": func(value interface{}) string {
			return naming.ToKebabCase(raymond.Str(value))
		},
		"snakeCase": func(value interface{}) string {
			return naming.ToSnakeCase(raymond.Str(value))
		},
		"constantCase": func(value interface{}) string {
			return naming.ToConstantCase(raymond.Str(value))
		},

		// Comparisons
		"eq": func(a, b interface{}) bool {
			return raymond.Str(a) == raymond.Str(b)
		},
		"ne": func(a, b interface{}) bool {
			return raymond.Str(a) != raymond.Str(b)
		},
		"lt": func(a, b interface{}) bool {
			return compareValues(a, b) < 0
		},
		"gt": func(a, b interface{}) bool {
			return compareValues(a, b) > 0
		},
		"gte": func(a, b interface{}) bool {
			return compareValues(a, b) >= 0
		},
		"lte": func(a, b interface{}) bool {
			return compareValues(a, b) <= 0
		},

		// Arrays
		"join": func(list interface{}, options *raymond.Options) string {
			sep := ", "
			if s := options.HashStr("sep"); s != "" {
				sep = s
			}
			return strings.Join(stringSlice(list), sep)
		},
		"length": func(value interface{}) int {
			return valueLength(value)
		},
		"first": func(value interface{}) interface{} {
			items := anySlice(value)
			if len(items) == 0 {
				return nil
			}
			return items[0]
		},
		"last": func(value interface{}) interface{} {
			items := anySlice(value)
			if len(items) == 0 {
				return nil
			}
			return items[len(items)-1]
		},

		// Formatting
		"json": func(value interface{}, options *raymond.Options) raymond.SafeString {
			indent := 2
			if h := options.HashProp("indent"); h != nil {
				if n, err := strconv.Atoi(raymond.Str(h)); err == nil {
					indent = n
				}
			}
			raw, err := json.MarshalIndent(value, "", strings.Repeat(" ", indent))
			if err != nil {
				return ""
			}
			return raymond.SafeString(raw)
		},
		"indent": func(count, value interface{}) raymond.SafeString {
			n, err := strconv.Atoi(raymond.Str(count))
			if err != nil || n < 0 {
				n = 0
			}
			return raymond.SafeString(indentLines(raymond.Str(value), n))
		},

		// Dates
		"now": func(options *raymond.Options) string {
			layout := time.RFC3339
			if f := options.HashStr("format"); f != "" {
				layout = f
			}
			return time.Now().Format(layout)
		},
		"year": func(options *raymond.Options) string {
			return strconv.Itoa(time.Now().Year())
		},
		"isoDate": func(value interface{}) string {
			return truncateISODate(raymond.Str(value))
		},

		// Localized UI strings
		"t": func(key string, options *raymond.Options) string {
			lang := matchLanguage(r.locale)
			if table, ok := uiStrings[lang]; ok {
				if s, ok := table[key]; ok {
					return s
				}
			}
			if fallback := options.HashStr("default"); fallback != "" {
				return fallback
			}
			return key
		},

		// Inheritance marker: after resolution a block simply renders its
		// body.
		"block": func(name string, options *raymond.Options) raymond.SafeString {
			return raymond.SafeString(options.Fn())
		},
	}
}

// compareValues compares two values numerically when both parse as
// numbers, lexically otherwise.
func compareValues(a, b interface{}) int {
	as, bs := raymond.Str(a), raymond.Str(b)

	af, aerr := strconv.ParseFloat(as, 64)
	bf, berr := strconv.ParseFloat(bs, 64)
	if aerr == nil && berr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(as, bs)
}

// indentLines prefixes every non-empty line with n spaces.
func indentLines(s string, n int) string {
	if n == 0 || s == "" {
		return s
	}

	prefix := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}

// truncateISODate reduces an ISO timestamp to its date part.
func truncateISODate(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

func anySlice(value interface{}) []interface{} {
	if value == nil {
		return nil
	}

	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil
	}

	items := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		items[i] = v.Index(i).Interface()
	}
	return items
}

func stringSlice(value interface{}) []string {
	items := anySlice(value)
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = raymond.Str(item)
	}
	return out
}

func valueLength(value interface{}) int {
	if value == nil {
		return 0
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String:
		return v.Len()
	default:
		return 0
	}
}
