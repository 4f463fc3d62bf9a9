package search

import "strings"

// AdminFilter describes the admin component listing. Unlike Query there is no
// relevance machinery: the text filter is a plain substring OR, rows come back
// newest first, and a price range is supported.
type AdminFilter struct {
	// Term is matched as a case-insensitive substring of
	// name/description/slug/keywords. No ranking, no fuzziness.
	Term         string
	CategorySlug string

	IsFree     *bool
	IsFeatured *bool
	IsNew      *bool
	IsAI       *bool
	Visible    *bool

	MinPrice *float64
	MaxPrice *float64

	Limit int
	Skip  int
}

// conditions builds the exact predicate list for the filter.
func (f AdminFilter) conditions(p *params) []string {
	var conds []string
	if f.Term != "" {
		pat := p.add(`%` + f.Term + `%`)
		conds = append(conds, `(c.name ILIKE `+pat+
			` OR c.description ILIKE `+pat+
			` OR c.slug ILIKE `+pat+
			` OR `+keywordsText+` ILIKE `+pat+`)`)
	}
	if f.CategorySlug != "" {
		conds = append(conds, `cat.slug = `+p.add(f.CategorySlug))
	}
	if f.IsFree != nil {
		conds = append(conds, `c.is_free = `+p.add(*f.IsFree))
	}
	if f.IsFeatured != nil {
		conds = append(conds, `c.is_featured = `+p.add(*f.IsFeatured))
	}
	if f.IsNew != nil {
		conds = append(conds, `c.is_new = `+p.add(*f.IsNew))
	}
	if f.IsAI != nil {
		conds = append(conds, `c.is_ai = `+p.add(*f.IsAI))
	}
	if f.Visible != nil {
		conds = append(conds, `c.visible = `+p.add(*f.Visible))
	}
	if f.MinPrice != nil {
		conds = append(conds, `c.price >= `+p.add(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, `c.price <= `+p.add(*f.MaxPrice))
	}
	return conds
}

// Build assembles the page query and the filtered count query. The unfiltered
// total comes from TotalSQL as a third, independent query.
func (f AdminFilter) Build() (sel, count string, selArgs, countArgs []any) {
	p := &params{}
	where := ``
	if conds := f.conditions(p); len(conds) > 0 {
		where = ` WHERE ` + strings.Join(conds, ` AND `)
	}

	count = `SELECT count(*) ` + fromClause + where
	countArgs = append([]any(nil), p.args...)

	sel = `SELECT ` + selectColumns + ` ` + fromClause + where +
		` ORDER BY c.created_at DESC` +
		` LIMIT ` + p.add(f.Limit) + ` OFFSET ` + p.add(f.Skip)
	selArgs = p.args
	return sel, count, selArgs, countArgs
}

// TotalSQL counts every component regardless of filters.
func TotalSQL() string { return `SELECT count(*) FROM components` }
