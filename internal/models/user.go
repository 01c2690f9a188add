// Package models содержит доменные структуры пользователя, контакта и адреса,
// а также структуры запросов и ответов API с правилами валидации.
package models

// User представляет зарегистрированного пользователя.
type User struct {
	Username     string  // Уникальное имя пользователя
	PasswordHash string  // bcrypt-хеш пароля
	Name         string  // Отображаемое имя
	Token        *string // Токен текущей сессии, nil после выхода
}

// RegisterUserRequest представляет тело запроса регистрации.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
	Name     string `json:"name" validate:"required,max=100"`
}

// LoginUserRequest представляет тело запроса входа.
type LoginUserRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// UpdateUserRequest представляет частичное обновление текущего пользователя.
// Отсутствующие поля не меняются, присутствующие не могут быть пустыми.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=100"`
}

// UserResponse содержит публичные поля пользователя. Пароль не отдаётся никогда.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// TokenResponse представляет результат успешного входа.
type TokenResponse struct {
	Token string `json:"token"`
}

// Session содержит поля пользователя, которые хранятся в кеше сессий.
// Хеш пароля в кеш не попадает.
type Session struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// ToSession возвращает запись кеша для сессии с токеном tok.
func (u *User) ToSession(tok string) Session {
	return Session{
		Username: u.Username,
		Name:     u.Name,
		Token:    tok,
	}
}

// User восстанавливает пользователя из записи кеша.
func (s Session) User() *User {
	tok := s.Token
	return &User{
		Username: s.Username,
		Name:     s.Name,
		Token:    &tok,
	}
}

// ToResponse возвращает публичные поля пользователя.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		Username: u.Username,
		Name:     u.Name,
	}
}
