package domain

import (
	"encoding/json"
	"time"
)

const fallbackUserName = "User"

// UserProfile is the signed-in user as cached next to the credential.
// Its JSON form is the persisted profile entry.
type UserProfile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// UserID accepts either a JSON string or a JSON number and always holds the
// string form.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = UserID(n.String())
	return nil
}

// AuthUser is the user object returned by the login and registration endpoints.
type AuthUser struct {
	ID       UserID `json:"id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     Role   `json:"role,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// AuthResponse is the payload of a successful login or registration.
type AuthResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

// Profile derives the cached profile from the server's user object.
//
//	name  = username, else email, else "User"
//	email = email, else username
//	role  = server role, else DefaultRole
func (u AuthUser) Profile() UserProfile {
	name := u.Username
	if name == "" {
		name = u.Email
	}
	if name == "" {
		name = fallbackUserName
	}

	email := u.Email
	if email == "" {
		email = u.Username
	}

	role := u.Role
	if role == "" {
		role = DefaultRole
	}

	return UserProfile{
		ID:     string(u.ID),
		Name:   name,
		Email:  email,
		Role:   role,
		Avatar: u.Avatar,
	}
}

// Account is a user record held by the upstream API.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthUser renders the account the way the login endpoint reports it.
func (a *Account) AuthUser() AuthUser {
	return AuthUser{
		ID:       UserID(a.ID),
		Username: a.Username,
		Email:    a.Email,
		Role:     a.Role,
		Avatar:   a.Avatar,
	}
}
