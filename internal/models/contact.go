package models

// Contact представляет контакт, принадлежащий ровно одному пользователю.
type Contact struct {
	ID        int64   `json:"id"`
	Username  string  `json:"-"`
	FirstName string  `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// ContactRequest представляет тело запросов создания и полного обновления контакта.
type ContactRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email" validate:"omitempty,min=1,max=200,email"`
	Phone     *string `json:"phone" validate:"omitempty,min=1,max=20"`
}

// SearchContactRequest представляет параметры поиска контактов.
type SearchContactRequest struct {
	Name  string `json:"name" validate:"omitempty,max=100"`
	Email string `json:"email" validate:"omitempty,max=200"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
	Page  int    `json:"page" validate:"min=1,lte=1000000"`
	Size  int    `json:"size" validate:"min=1,lte=100"`
}

// ContactFilter передаётся в хранилище для поиска контактов пользователя.
// Пустые строки означают отсутствие фильтра.
type ContactFilter struct {
	Username string
	Name     string
	Email    string
	Phone    string
	Limit    int
	Offset   int
}

// ToContact собирает контакт пользователя из тела запроса.
func (r ContactRequest) ToContact(username string) Contact {
	return Contact{
		Username:  username,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
	}
}
