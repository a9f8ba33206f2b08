package vars

import "strings"

// FirstOr returns the value of the first source that has one, or def.
func FirstOr[T any](def T, sources ...func() (T, bool)) T {
	for _, source := range sources {
		if value, ok := source(); ok {
			return value
		}
	}
	return def
}

// ParseBool accepts the spellings used on command lines and in config files.
// ok is false for anything unrecognized.
func ParseBool(str string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, true
	case "false", "f", "no", "n", "off", "0":
		return false, true
	}
	return false, false
}
