package repository

// Page describes an offset/limit window over a listing. Zero values are
// normalized to the first page of ten documents.
type Page struct {
	Number int64
	Limit  int64
}

// Normalize clamps the page to valid defaults: page 1, limit 10.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
	return p
}

// Skip returns the number of documents to skip for this page.
func (p Page) Skip() int64 {
	n := p.Normalize()
	return (n.Number - 1) * n.Limit
}

// TotalPages returns ceil(total/limit) for this page's limit.
func (p Page) TotalPages(total int64) int64 {
	limit := p.Normalize().Limit
	return (total + limit - 1) / limit
}
