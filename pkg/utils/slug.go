package utils

import "strings"

// DeriveKey turns a generated creature name into its catalog key.
// The key doubles as the id of the creature a combination produces,
// so the transform must stay pure: lowercase, spaces become hyphens.
func DeriveKey(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(key, " ", "-")
}
