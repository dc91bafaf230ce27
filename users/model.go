package users

type User struct {
	ID           string `bson:"_id"`
	Name         string `bson:"name"`
	Role         string `bson:"role"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// ToResponse strips the password hash for the wire.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
