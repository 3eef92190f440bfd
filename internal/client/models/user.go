// Package models defines the records exchanged with the user-management API
// and the state snapshots exposed by the client stores.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// User is an identity record as returned by the API.
type User struct {
	ID        string     `json:"_id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// UnmarshalJSON accepts the id under "_id" or "id", as a string or a number.
func (u *User) UnmarshalJSON(data []byte) error {
	var raw struct {
		MongoID   json.RawMessage `json:"_id"`
		ID        json.RawMessage `json:"id"`
		Name      string          `json:"name"`
		Email     string          `json:"email"`
		CreatedAt *time.Time      `json:"createdAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	idRaw := raw.MongoID
	if len(idRaw) == 0 || bytes.Equal(idRaw, []byte("null")) {
		idRaw = raw.ID
	}
	id, err := decodeID(idRaw)
	if err != nil {
		return err
	}

	*u = User{ID: id, Name: raw.Name, Email: raw.Email, CreatedAt: raw.CreatedAt}
	return nil
}

func decodeID(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("user id must be a string or a number: %s", raw)
	}
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10), nil
	}
	return n.String(), nil
}

// Clone returns a deep copy of u, or nil for a nil receiver.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.CreatedAt != nil {
		t := *u.CreatedAt
		c.CreatedAt = &t
	}
	return &c
}

// Joined formats the creation date, or "N/A" when unknown.
func (u User) Joined() string {
	if u.CreatedAt == nil {
		return "N/A"
	}
	return u.CreatedAt.Local().Format("2006-01-02")
}

// CloneUsers copies a roster so callers never alias store state.
func CloneUsers(users []User) []User {
	out := make([]User, len(users))
	for i := range users {
		out[i] = *users[i].Clone()
	}
	return out
}
