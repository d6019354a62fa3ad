package chart

import (
	"fmt"
	"strings"
)

// KeyPlaceholder is replaced by the group key in label templates.
const KeyPlaceholder = "{key}"

// TemplateLabel returns a label function substituting every "{key}" in tmpl
// with the formatted key. An empty template yields the key itself.
// Only the literal placeholder is replaced; format specs such as
// "{key:>3}" are left as written.
func TemplateLabel[K any](tmpl string) func(K) string {
	if tmpl == "" {
		tmpl = KeyPlaceholder
	}
	return func(key K) string {
		return strings.ReplaceAll(tmpl, KeyPlaceholder, fmt.Sprint(key))
	}
}
