package model

// User holds the identity claims of the signed-in user.
type User struct {
	ObjectID          string `json:"oid"`
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
}

// DisplayName returns the best human readable name available.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	switch {
	case u.Name != "":
		return u.Name
	case u.PreferredUsername != "":
		return u.PreferredUsername
	default:
		return u.Email
	}
}

// Scope identifies the caller of a use case.
type Scope struct {
	UserID   string
	Username string
}

// NewScope builds a Scope for a signed-in user. A nil user yields the zero Scope.
func NewScope(u *User) Scope {
	if u == nil {
		return Scope{}
	}
	id := u.ObjectID
	if id == "" {
		id = u.PreferredUsername
	}
	return Scope{UserID: id, Username: u.DisplayName()}
}
