package controller

import (
	"simaru-admin/internal/domain"
	"simaru-admin/internal/domain/models"
	"simaru-admin/internal/source"
	"simaru-admin/internal/utils"
)

// NewUsers builds the user screen's controller.
func NewUsers(src source.Source[models.User]) *Controller[models.User] {
	return New(UserConfig(), src)
}

func UserConfig() Config[models.User] {
	return Config[models.User]{
		Entity: "users",
		ID:     func(u models.User) int64 { return u.ID },
		WithID: func(u models.User, id int64) models.User {
			u.ID = id
			return u
		},
		SearchText: func(u models.User) []string {
			return []string{u.Name, u.Email}
		},
		// Passwords are write-only: the edit buffer always starts with the
		// password fields blanked and requires re-entry.
		ToForm: func(u models.User) FormValues {
			return FormValues{
				"name":            u.Name,
				"email":           u.Email,
				"password":        "",
				"confirmPassword": "",
			}
		},
		FromForm: userFromForm,
	}
}

func userFromForm(values FormValues, editing bool) (models.User, error) {
	var user models.User

	name := utils.TrimOrEmpty(values["name"])
	if name == "" {
		return user, domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	email := utils.TrimOrEmpty(values["email"])
	if email == "" {
		return user, domain.ValidationError{Field: "email", Msg: "wajib diisi"}
	}

	password := values["password"]
	if !editing && password == "" {
		return user, domain.ValidationError{Field: "password", Msg: "wajib diisi"}
	}
	// Checked at submission only, and the one failure that names its field.
	if password != values["confirmPassword"] {
		return user, domain.ValidationError{Msg: "Passwords do not match!"}
	}

	user = models.User{
		Name:     name,
		Email:    email,
		Password: password,
	}
	return user, nil
}
