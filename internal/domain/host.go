package domain

type Host struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Password       string `json:"-"` // argon2id hash
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	ProfilePicture string `json:"profilePicture"`
	AboutMe        string `json:"aboutMe"`
}

type HostInput struct {
	Username       string `json:"username" validate:"required,max=255"`
	Password       string `json:"password" validate:"required"`
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email"`
	PhoneNumber    string `json:"phoneNumber" validate:"required"`
	ProfilePicture string `json:"profilePicture"`
	AboutMe        string `json:"aboutMe"`
}

type HostFilter struct {
	Name string
}
