package repository

import "strings"

// likeEscaper neutralizes the LIKE metacharacters, so user-supplied filter
// text is always a literal substring match. Pairs with ESCAPE '\' on the
// query side.
var likeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`%`, `\%`,
	`_`, `\_`,
)

func likePattern(filter string) string {
	return "%" + likeEscaper.Replace(filter) + "%"
}
