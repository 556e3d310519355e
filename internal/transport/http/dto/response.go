package dto

import "github.com/baechuer/user-directory/internal/domain"

// UserView is the public projection of a user; the password hash never
// appears here.
type UserView struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Profession string `json:"profession"`
}

func NewUserView(u domain.User) UserView {
	return UserView{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Phone:      u.Phone,
		Profession: u.Profession,
	}
}

func NewUserViews(us []domain.User) []UserView {
	out := make([]UserView, 0, len(us))
	for _, u := range us {
		out = append(out, NewUserView(u))
	}
	return out
}

// LoginView is the login response: only id, email and name.
type LoginView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type MessageView struct {
	Message string `json:"message"`
}
