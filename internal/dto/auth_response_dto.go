package dto

// AzureLoginRequest carries the token posted back by the frontend after the
// Azure AD redirect.
type AzureLoginRequest struct {
	Code  string  `json:"code" binding:"required"`
	State *string `json:"state"`
}

// LoginResponse is the uniform login outcome envelope.
type LoginResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Token   *string       `json:"token,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
}

// LoginURLResponse carries the Azure AD authorization endpoint URL.
type LoginURLResponse struct {
	URL string `json:"url"`
}

// MessageResponse is a simple confirmation envelope.
type MessageResponse struct {
	Message string `json:"message"`
}
