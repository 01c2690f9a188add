package models

// Address представляет адрес контакта. Доступен только через свой контакт.
type Address struct {
	ID         int64   `json:"id"`
	ContactID  int64   `json:"-"`
	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	Country    string  `json:"country"`
	PostalCode string  `json:"postal_code"`
}

// AddressRequest представляет тело запросов создания и полного обновления адреса.
type AddressRequest struct {
	Street     *string `json:"street" validate:"omitempty,min=1,max=255"`
	City       *string `json:"city" validate:"omitempty,min=1,max=100"`
	Province   *string `json:"province" validate:"omitempty,min=1,max=100"`
	Country    string  `json:"country" validate:"required,max=100"`
	PostalCode string  `json:"postal_code" validate:"required,max=10"`
}

// ToAddress собирает адрес контакта из тела запроса.
func (r AddressRequest) ToAddress(contactID int64) Address {
	return Address{
		ContactID:  contactID,
		Street:     r.Street,
		City:       r.City,
		Province:   r.Province,
		Country:    r.Country,
		PostalCode: r.PostalCode,
	}
}
