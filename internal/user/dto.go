package user

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
}

type RegisterDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type UpdateSubscriptionDTO struct {
	Status SubscriptionStatus `json:"status"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
