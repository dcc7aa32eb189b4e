package sqlite

import (
	"strings"
)

// placeholder returns a placeholder for SQLite (uses ?).
func placeholder(int) string {
	return "?"
}

// placeholders returns n placeholders for SQLite.
func placeholders(n int) string {
	list := make([]string, n)
	for i := range list {
		list[i] = placeholder(i + 1)
	}
	return strings.Join(list, ", ")
}
