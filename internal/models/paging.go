package models

// Paging описывает окно выдачи над отфильтрованным набором.
type Paging struct {
	Page       int `json:"page"`
	TotalPage  int `json:"total_page"`
	TotalItems int `json:"total_items"`
}

// NewPaging считает метаданные страницы: total_page = ceil(total_items / size).
func NewPaging(page, size, totalItems int) Paging {
	totalPage := 0
	if size > 0 {
		totalPage = (totalItems + size - 1) / size
	}
	return Paging{
		Page:       page,
		TotalPage:  totalPage,
		TotalItems: totalItems,
	}
}

// ContactPage представляет результат поиска контактов.
type ContactPage struct {
	Data   []Contact
	Paging Paging
}
