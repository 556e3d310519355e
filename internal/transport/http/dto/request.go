package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/baechuer/user-directory/internal/domain"
)

var validate = validator.New()

type RegisterRequest struct {
	Email      string `json:"email" validate:"required,email,max=255"`
	Name       string `json:"name" validate:"required,max=100"`
	Password   string `json:"password" validate:"required,min=6,max=128"`
	Phone      string `json:"phone" validate:"required,max=30"`
	Profession string `json:"profession" validate:"required,max=100"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	r.Name = strings.TrimSpace(r.Name)
	return validateStruct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	return validateStruct(r)
}

// UpdateUserRequest carries a partial update; absent fields stay untouched.
type UpdateUserRequest struct {
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone      *string `json:"phone,omitempty" validate:"omitempty,min=1,max=30"`
	Profession *string `json:"profession,omitempty" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateUserRequest) Validate() error {
	return validateStruct(r)
}

func (r *UpdateUserRequest) ToDomain() domain.UserUpdate {
	return domain.UserUpdate{
		Email:      r.Email,
		Name:       r.Name,
		Phone:      r.Phone,
		Profession: r.Profession,
	}
}

func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ErrInternal(err)
	}

	// Report the first failing field; one error at a time is enough for forms.
	fe := ve[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(field)
	case "email":
		return domain.ErrInvalidField(field, "invalid format")
	case "min":
		return domain.ErrInvalidField(field, fmt.Sprintf("must be at least %s characters", fe.Param()))
	case "max":
		return domain.ErrInvalidField(field, fmt.Sprintf("must be at most %s characters", fe.Param()))
	default:
		return domain.ErrInvalidField(field, "invalid")
	}
}
