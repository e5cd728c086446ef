// Package repository holds helpers shared by the store implementations.
package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns a LIKE pattern matching any value that contains
// term. Wildcards in term are escaped with a backslash.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
