// Package search builds the catalog search and listing SQL.
//
// Two builders live here on purpose. Query is the public ranked fuzzy search
// (full-text rank, trigram similarity, substring fallback). AdminFilter is the
// admin listing with exact predicates only. They look similar but their
// matching semantics differ and they are not meant to be merged.
//
// Builders are pure: they produce SQL text plus positional args and never touch
// a connection, so every stage can be tested without a database.
package search

import "strconv"

// params accumulates positional query arguments.
type params struct{ args []any }

// add registers an argument and returns its placeholder ($1, $2, ...).
func (p *params) add(v any) string {
	p.args = append(p.args, v)
	return "$" + strconv.Itoa(len(p.args))
}

const (
	// fromClause joins every component to its category; category name is part
	// of both the result row and the search document.
	fromClause = `FROM components c JOIN categories cat ON cat.id = c.category_id`

	// selectColumns is the shared projection for catalog rows.
	selectColumns = `c.id, c.category_id, cat.name, c.name, c.slug, c.description, ` +
		`c.keywords, c.price, c.is_free, c.is_featured, c.is_new, c.is_ai, ` +
		`c.visible, c.views, c.created_at`

	// keywordsText flattens the keywords array for text matching.
	keywordsText = `array_to_string(c.keywords, ' ')`
)
