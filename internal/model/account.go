// Package model defines the Account entity and the request payloads the
// HTTP layer binds into.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Account is a persisted customer account.
type Account struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Address     string  `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	DateJoined  Date    `json:"date_joined"`
}

var validate = newValidator()

// newValidator reports field names by their JSON key so clients see
// "phone_number", not "PhoneNumber".
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// CreateAccountPayload is the body of POST /accounts.
type CreateAccountPayload struct {
	Name        string  `json:"name" validate:"required,max=64"`
	Email       string  `json:"email" validate:"required,max=64"`
	Address     string  `json:"address" validate:"required,max=256"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,max=32"`
	DateJoined  *Date   `json:"date_joined"`
}

func (p *CreateAccountPayload) Validate() error {
	return validate.Struct(p)
}

// JoinedOn returns the requested date_joined, or today when none was sent.
func (p *CreateAccountPayload) JoinedOn() Date {
	if p.DateJoined != nil {
		return *p.DateJoined
	}
	return Today()
}

// Account builds the entity to insert.
func (p *CreateAccountPayload) Account() *Account {
	return &Account{
		Name:        p.Name,
		Email:       p.Email,
		Address:     p.Address,
		PhoneNumber: p.PhoneNumber,
		DateJoined:  p.JoinedOn(),
	}
}

// UpdateAccountPayload is the body of PUT /accounts/:id.
//
// The body is validated exactly like a create, but only name, address,
// phone_number and date_joined are written; the stored email is kept.
type UpdateAccountPayload struct {
	ID int64 `param:"id" json:"-"`
	CreateAccountPayload
}

func (p *UpdateAccountPayload) Validate() error {
	return validate.Struct(p)
}

// Apply replaces the updatable fields on account. A missing date_joined
// resets to today, the same as on create.
func (p *UpdateAccountPayload) Apply(account *Account) {
	account.Name = p.Name
	account.Address = p.Address
	account.PhoneNumber = p.PhoneNumber
	account.DateJoined = p.JoinedOn()
}

type GetAccountPayload struct {
	ID int64 `param:"id"`
}

func (p *GetAccountPayload) Validate() error {
	return validate.Struct(p)
}

type DeleteAccountPayload struct {
	ID int64 `param:"id"`
}

func (p *DeleteAccountPayload) Validate() error {
	return validate.Struct(p)
}

type ListAccountsPayload struct{}

func (p *ListAccountsPayload) Validate() error {
	return nil
}
