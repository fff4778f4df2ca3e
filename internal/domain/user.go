package domain

import "time"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleDriver   Role = "DRIVER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserSummary — срез пользователя для вложения в ответы по броням.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone}
}

type CreateUserInput struct {
	Email          string
	Password       string
	Name           string
	Phone          string
	Role           Role
	TelegramChatID *int64
}
