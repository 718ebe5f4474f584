// Package util holds naming helpers shared by the declaration emitters.
package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prettify converts a reflected name into a class identifier: the first
// character is upper-cased.
//
//	"GETACTORVALUE" -> "Getactorvalue"
//	"activate"      -> "Activate"
//	"getPlayer"     -> "GetPlayer"
func Prettify(name string) string {
	return prettify(name, unicode.ToUpper)
}

// PrettifyMember converts a reflected name into a callable member identifier:
// the first character is lower-cased.
//
//	"GetActorValue" -> "getActorValue"
//	"ACTIVATE"      -> "activate"
func PrettifyMember(name string) string {
	return prettify(name, unicode.ToLower)
}

// prettify applies first to the leading rune. The remainder is lower-cased
// only when name has a single case throughout; mixed-case names are assumed
// to already be camelCase and keep their remainder verbatim.
func prettify(name string, first func(rune) rune) string {
	if name == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(name)
	rest := name[size:]
	if isSingleCase(name) {
		rest = strings.ToLower(rest)
	}
	return string(first(r)) + rest
}

func isSingleCase(s string) bool {
	return strings.ToUpper(s) == s || strings.ToLower(s) == s
}
