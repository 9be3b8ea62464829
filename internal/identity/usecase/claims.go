package usecase

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/oauth2"

	"em-agent/internal/identity"
	"em-agent/internal/model"
)

type idTokenClaims struct {
	Name              string `json:"name"`
	PreferredUsername string `json:"preferred_username"`
	Email             string `json:"email"`
	ObjectID          string `json:"oid"`
	Subject           string `json:"sub"`
}

// userFromToken reads the user claims of the id_token in tok.
// The id_token comes straight from the token endpoint over TLS, so its signature is not checked.
func userFromToken(tok *oauth2.Token) (*model.User, error) {
	raw, _ := tok.Extra("id_token").(string)
	if raw == "" {
		return nil, identity.ErrMissingIdentity
	}

	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: malformed id_token", identity.ErrMissingIdentity)
	}
	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return nil, fmt.Errorf("%w: decode id_token: %v", identity.ErrMissingIdentity, err)
	}

	var c idTokenClaims
	if err := json.Unmarshal(payload, &c); err != nil {
		return nil, fmt.Errorf("%w: parse id_token: %v", identity.ErrMissingIdentity, err)
	}

	user := &model.User{
		ObjectID:          c.ObjectID,
		Name:              c.Name,
		PreferredUsername: c.PreferredUsername,
		Email:             c.Email,
	}
	if user.ObjectID == "" {
		user.ObjectID = c.Subject
	}
	if user.PreferredUsername == "" {
		user.PreferredUsername = c.Email
	}
	if user.ObjectID == "" && user.PreferredUsername == "" {
		return nil, fmt.Errorf("%w: id_token names no user", identity.ErrMissingIdentity)
	}
	return user, nil
}
