package domain

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type UpdateUserRequest struct {
	ID   int     `json:"id"`
	Name *string `json:"name"`
	Role *string `json:"role"`
}
