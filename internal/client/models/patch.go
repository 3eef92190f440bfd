package models

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var ErrEmptyPatch = errors.New("nothing to update")

// UpdateUserData is a partial update; nil fields are not sent.
type UpdateUserData struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

func (d UpdateUserData) Validate() error {
	if d.Name == nil && d.Email == nil {
		return ErrEmptyPatch
	}
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.By(notBlank), validation.Length(1, 100)),
		validation.Field(&d.Email, validation.By(notBlank), is.Email),
	)
}

func notBlank(value any) error {
	s, ok := value.(*string)
	if !ok || s == nil {
		return nil
	}
	if strings.TrimSpace(*s) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

// Apply returns u with the patch applied. The API response is authoritative;
// Apply only previews an edit before it is sent.
func (d UpdateUserData) Apply(u User) User {
	if d.Name != nil {
		u.Name = *d.Name
	}
	if d.Email != nil {
		u.Email = *d.Email
	}
	return u
}
