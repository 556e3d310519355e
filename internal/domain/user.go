package domain

// User is a registered person in the directory.
// PasswordHash never leaves the server; DTO mapping is responsible
// for keeping it out of responses.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Phone        string
	Profession   string
}

// UserUpdate carries a partial update. Nil fields are left untouched.
type UserUpdate struct {
	Email      *string
	Name       *string
	Phone      *string
	Profession *string
}

// Apply overwrites the set fields of u with the update's values.
func (p UserUpdate) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Profession != nil {
		u.Profession = *p.Profession
	}
}

// IsEmpty reports whether the update carries no fields at all.
func (p UserUpdate) IsEmpty() bool {
	return p.Email == nil && p.Name == nil && p.Phone == nil && p.Profession == nil
}
