package handler

import (
	"stayadmin-service/internal/mailer"
	"stayadmin-service/internal/password"

	"github.com/go-playground/validator/v10"
)

// Shared handler dependencies, wired once at startup
var (
	mail   *mailer.Mailer
	breach *password.Client
)

// Init wires the outbound collaborators used by the handlers
func Init(m *mailer.Mailer, b *password.Client) {
	mail = m
	breach = b
}

// Validator adapts go-playground/validator to echo's Validator interface
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
