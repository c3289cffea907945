package models

import "time"

// Account is a stored login. PasswordHash never leaves the server.
type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AccountView is an Account without its password hash.
type AccountView struct {
	ID        string
	Username  string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Account) View() *AccountView {
	return &AccountView{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type SignupInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	UsernameOrEmail string
	Password        string
}
