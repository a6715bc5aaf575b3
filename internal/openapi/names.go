package openapi

import "strings"

// CleanClassName strips non-identifier characters, capitalizes each
// underscore-separated token, and concatenates — e.g. "order_items" and
// "order-items" both become "OrderItems".
func CleanClassName(name string) string {
	tokens := splitIdentifierTokens(name)
	var sb strings.Builder
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(tok[:1]))
		if len(tok) > 1 {
			sb.WriteString(tok[1:])
		}
	}
	return sb.String()
}

// CleanFileName lowercases name and strips non-identifier characters to
// underscores, for use as a file or directory name.
func CleanFileName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		if isIdentChar(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// CleanParameterName replaces any character illegal in an identifier with
// an underscore, and prefixes an underscore if the result would start
// with a digit.
func CleanParameterName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if isIdentChar(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteByte('_')
		}
	}
	out := sb.String()
	if out != "" && out[0] >= '0' && out[0] <= '9' {
		out = "_" + out
	}
	return out
}

func isIdentChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

// splitIdentifierTokens treats runs of non-identifier characters as word
// boundaries rather than stripping them to nothing, the same way the
// original tool's toKebabCase turns a separator run into a single hyphen
// (e.g. "Cart RecoveryController" -> "cart-recovery", never
// "cartrecovery") — so "order-items" tokenizes to ["order", "items"]
// and CleanClassName joins them as "OrderItems".
func splitIdentifierTokens(name string) []string {
	var cleaned strings.Builder
	for _, r := range name {
		if isIdentChar(r) {
			cleaned.WriteRune(r)
		} else {
			cleaned.WriteByte('_')
		}
	}
	return strings.Split(cleaned.String(), "_")
}
