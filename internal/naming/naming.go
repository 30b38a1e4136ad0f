package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UpperCamel renders a key in UpperCamel form.
// Every token gets an upper-case first rune, the remaining runes are kept
// as written, so "foo_bar" becomes "FooBar" and "bazBan" becomes "BazBan".
func UpperCamel(s string) string {
	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder

	b.Grow(len(s))

	for _, t := range tokens {
		b.WriteString(capitalize(t))
	}

	return b.String()
}

// LowerCamel renders a Go identifier as a field key: the first token is
// lower-cased, the rest are joined as UpperCamel.
//   - "FooBar" -> "fooBar"
//   - "ID" -> "id"
//   - "OrderID" -> "orderID"
func LowerCamel(s string) string {
	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return ""
	}

	var b strings.Builder

	b.Grow(len(s))
	b.WriteString(strings.ToLower(tokens[0]))

	for _, t := range tokens[1:] {
		b.WriteString(capitalize(t))
	}

	return b.String()
}

// Accessor returns the accessor method name for a key, e.g. "SetFooBar".
// An empty key has no accessor.
func Accessor(prefix, key string) string {
	camel := UpperCamel(key)
	if camel == "" {
		return ""
	}

	return prefix + camel
}

// Normalize folds a key for case-insensitive comparison:
// "order_id", "orderId" and "OrderID" all become "orderid".
func Normalize(s string) string {
	return strings.ToLower(strings.Join(Tokenize(s), ""))
}

// Tokenize splits an identifier on separators and camel humps.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "foo_bar" -> ["foo", "bar"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports whether a new token begins at position i.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "orderID" splits before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// "XMLParser" splits before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}
