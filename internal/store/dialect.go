package store

import "strings"

// dialect renders the few SQL fragments whose spelling differs between the
// supported drivers. Placeholders are always written as ? and rebound by sqlx.
type dialect string

func dialectFor(driverName string) dialect {
	switch driverName {
	case "postgres", "pgx":
		return "postgres"
	case "mysql":
		return "mysql"
	default:
		return "sqlite"
	}
}

// contains returns a case-sensitive substring predicate with one bound
// placeholder for the needle.
func (d dialect) contains(haystack string) string {
	switch d {
	case "postgres":
		return "strpos(" + haystack + ", ?) > 0"
	case "mysql":
		// Columns use utf8mb4_bin, so LOCATE compares case-sensitively.
		return "LOCATE(?, " + haystack + ") > 0"
	default:
		// instr, unlike LIKE, is case-sensitive for ASCII.
		return "instr(" + haystack + ", ?) > 0"
	}
}

// concat joins string expressions.
func (d dialect) concat(parts ...string) string {
	if d == "mysql" {
		return "CONCAT(" + strings.Join(parts, ", ") + ")"
	}
	return "(" + strings.Join(parts, " || ") + ")"
}
