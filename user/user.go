// Package user holds the user value type.
package user

import "github.com/ti/recordstore/model"

// User a user with a first and last name.
type User struct {
	Firstname string `json:"firstname" yaml:"firstname"`
	Lastname  string `json:"lastname" yaml:"lastname"`
}

// New creates a user.
func New(firstname, lastname string) *User {
	return &User{
		Firstname: firstname,
		Lastname:  lastname,
	}
}

// FromRecord reads firstname and lastname from r, other fields are ignored.
func FromRecord(r model.Record) *User {
	firstname, _ := r["firstname"].(string)
	lastname, _ := r["lastname"].(string)
	return New(firstname, lastname)
}

// Name returns the full name.
func (u *User) Name() string {
	return u.Firstname + " " + u.Lastname
}

// Record converts the user for storage in a model.Model.
func (u *User) Record() model.Record {
	return model.Record{
		"firstname": u.Firstname,
		"lastname":  u.Lastname,
		"name":      u.Name(),
	}
}
