package match

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// initialisms are rendered upper-case inside Go identifiers.
var initialisms = map[string]struct{}{
	"acl": {}, "api": {}, "ascii": {}, "cpu": {}, "css": {}, "dns": {},
	"eof": {}, "guid": {}, "html": {}, "http": {}, "https": {}, "id": {},
	"ip": {}, "json": {}, "lhs": {}, "qps": {}, "ram": {}, "rhs": {},
	"rpc": {}, "sla": {}, "smtp": {}, "sql": {}, "ssh": {}, "tcp": {},
	"tls": {}, "ttl": {}, "udp": {}, "ui": {}, "uid": {}, "uri": {},
	"url": {}, "utf8": {}, "uuid": {}, "vm": {}, "xml": {}, "xss": {},
}

// words splits an identifier at separators and case boundaries:
//
//	"OrderID"         -> Order ID
//	"set_name"        -> set name
//	"getHTTPResponse" -> get HTTP Response
func words(s string) []string {
	runes := []rune(s)
	start := -1

	var out []string

	flush := func(end int) {
		if start >= 0 && end > start {
			out = append(out, string(runes[start:end]))
		}

		start = -1
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush(i)
			continue
		}

		if start >= 0 && caseBoundary(runes, i) {
			flush(i)
		}

		if start < 0 {
			start = i
		}
	}

	flush(len(runes))

	return out
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// caseBoundary reports whether a word starts at runes[i]: an upper-case rune
// after a lower-case one, or the last upper-case rune of a run followed by
// lower case ("XMLParser" splits before P).
func caseBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	if !unicode.IsUpper(runes[i-1]) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}

// TokenizeIdent splits an identifier into lower-case words.
func TokenizeIdent(s string) []string {
	tokens := words(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// NormalizeIdent folds an identifier for fuzzy comparison, so "full_option",
// "fullOption" and "FullOption" are equal.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// SnakeIdent rewrites an identifier in lower snake case.
func SnakeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "_")
}

// GoIdent joins the words of name into a camel-case Go identifier.
// Exported identifiers start upper-case, others lower-case:
//
//	GoIdent("set_name", true)  == "SetName"
//	GoIdent("set_name", false) == "setName"
//	GoIdent("is_userID", true) == "IsUserID"
func GoIdent(name string, exported bool) string {
	var sb strings.Builder

	for i, w := range words(name) {
		lower := strings.ToLower(w)

		if i == 0 && !exported {
			sb.WriteString(lower)
			continue
		}

		if _, ok := initialisms[lower]; ok {
			sb.WriteString(strings.ToUpper(w))
			continue
		}

		r, size := utf8.DecodeRuneInString(w)
		sb.WriteRune(unicode.ToUpper(r))
		sb.WriteString(w[size:])
	}

	return sb.String()
}
