// Package commalist handles the comma separated text columns used for tags and
// technologies.
package commalist

import "strings"

// Split breaks s on commas, trims each item and drops empty ones. Order is kept.
func Split(s string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			items = append(items, p)
		}
	}
	return items
}

// Join is the inverse of Split for already clean items.
func Join(items []string) string {
	return strings.Join(items, ", ")
}
