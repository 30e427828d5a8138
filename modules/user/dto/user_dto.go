package dto

// UpdateProfileRequest updates mutable profile fields. Identity (email) is
// immutable after signup.
type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
