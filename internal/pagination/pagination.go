package pagination

// Page — страница уже отсортированной выборки плюс навигационные метаданные.
type Page[T any] struct {
	Items      []T  `json:"items"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	HasPrev    bool `json:"has_prev"`
	HasNext    bool `json:"has_next"`
	PrevPage   int  `json:"prev_page,omitempty"`
	NextPage   int  `json:"next_page,omitempty"`
}

// Paginate режет выборку на страницы. page и limit должны быть положительными —
// это проверяет вызывающий код. Номер страницы зажимается в [1, total_pages];
// пустая выборка даёт страницу 1 из 1 без элементов.
func Paginate[T any](items []T, page, limit int) Page[T] {
	total := len(items)

	totalPages := (total + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	p := Page[T]{
		Items:      items[start:end],
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
		Limit:      limit,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
	if p.HasPrev {
		p.PrevPage = page - 1
	}
	if p.HasNext {
		p.NextPage = page + 1
	}
	return p
}
