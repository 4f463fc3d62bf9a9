package search

import "strings"

// similarityFloor is the trigram similarity threshold. 0.1 is a deliberately
// broad net: it catches typos and partial words at the cost of precision.
const similarityFloor = "0.1"

// searchDoc is the combined text a component is matched against:
// name, description, keywords and category name.
const searchDoc = `c.name || ' ' || c.description || ' ' || ` + keywordsText + ` || ' ' || cat.name`

// Query describes one public catalog search. Zero-value fields mean
// "no filter"; pointer flags are tri-state (nil = unfiltered).
type Query struct {
	// Term is the free-text search input. Empty disables text matching
	// entirely and the listing order becomes random.
	Term string
	// CategorySlug restricts results to one category.
	CategorySlug string
	// Keyword must exactly match one element of the keywords array.
	Keyword string

	IsFree     *bool
	IsFeatured *bool

	Limit int
	Skip  int
}

// matchPredicate returns the three-tier OR that decides whether a row
// qualifies: tokenized full-text match, trigram similarity above the floor on
// any of name/description/keywords, or a plain case-insensitive substring hit.
// term is the placeholder holding the search input.
func matchPredicate(term string) string {
	pat := `'%' || ` + term + ` || '%'`
	return `(` +
		`to_tsvector('english', ` + searchDoc + `) @@ plainto_tsquery('english', ` + term + `)` +
		` OR similarity(c.name, ` + term + `) > ` + similarityFloor +
		` OR similarity(c.description, ` + term + `) > ` + similarityFloor +
		` OR similarity(` + keywordsText + `, ` + term + `) > ` + similarityFloor +
		` OR c.name ILIKE ` + pat +
		` OR c.description ILIKE ` + pat +
		` OR ` + keywordsText + ` ILIKE ` + pat +
		`)`
}

// rankExpr returns the full-text relevance score, the primary sort key.
func rankExpr(term string) string {
	return `ts_rank(to_tsvector('english', ` + searchDoc + `), plainto_tsquery('english', ` + term + `))`
}

// similarityExpr returns the maximum trigram similarity across
// name/description/keywords, the secondary sort key.
func similarityExpr(term string) string {
	return `GREATEST(similarity(c.name, ` + term + `), ` +
		`similarity(c.description, ` + term + `), ` +
		`similarity(` + keywordsText + `, ` + term + `))`
}

// orderClause merges the tie-break chain: rank, then similarity, then random.
// With no term both scores are constant zero, so the order degenerates to pure
// random and an empty-search listing is intentionally unstable per call.
func orderClause(hasTerm bool) string {
	if !hasTerm {
		return `ORDER BY random()`
	}
	return `ORDER BY rank DESC, sim DESC, random()`
}

// filters appends the non-text predicates (visibility, category, exact
// keyword, tri-state flags) to p and returns the condition list.
func (q Query) filters(p *params) []string {
	conds := []string{`c.visible = TRUE`}
	if q.CategorySlug != "" {
		conds = append(conds, `cat.slug = `+p.add(q.CategorySlug))
	}
	if q.Keyword != "" {
		conds = append(conds, p.add(q.Keyword)+` = ANY(c.keywords)`)
	}
	if q.IsFree != nil {
		conds = append(conds, `c.is_free = `+p.add(*q.IsFree))
	}
	if q.IsFeatured != nil {
		conds = append(conds, `c.is_featured = `+p.add(*q.IsFeatured))
	}
	return conds
}

// Build assembles the page query and the matching count query. Both share the
// identical WHERE fragment, so the reported total is consistent with the page
// by construction even though they run as two separate round trips.
func (q Query) Build() (sel, count string, selArgs, countArgs []any) {
	p := &params{}
	rank, sim := `0`, `0`
	var conds []string
	if q.Term != "" {
		term := p.add(q.Term)
		conds = append(conds, matchPredicate(term))
		rank, sim = rankExpr(term), similarityExpr(term)
	}
	conds = append(conds, q.filters(p)...)
	where := strings.Join(conds, ` AND `)

	count = `SELECT count(*) ` + fromClause + ` WHERE ` + where
	countArgs = append([]any(nil), p.args...)

	sel = `SELECT ` + selectColumns + `, ` + rank + ` AS rank, ` + sim + ` AS sim ` +
		fromClause + ` WHERE ` + where + ` ` + orderClause(q.Term != "") +
		` LIMIT ` + p.add(q.Limit) + ` OFFSET ` + p.add(q.Skip)
	selArgs = p.args
	return sel, count, selArgs, countArgs
}
