package handler

import "github.com/wanderplan/travel-planner-api/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. The rendering lives in the central error handler; the type is
// declared here as well for the swagger annotations.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse carries the literal informational payloads the API defines
// (empty patch short-circuit, trip deletion confirmation).
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type registerRequest struct {
	FullName    string  `json:"fullName"    validate:"required"`
	Email       string  `json:"email"       validate:"required,email"`
	Password    string  `json:"password"    validate:"required"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// updateUserRequest is a sparse patch: nil fields are left untouched.
type updateUserRequest struct {
	FullName    *string `json:"fullName"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phoneNumber"`
}

// --- Response types ---

// authUser is the trimmed user block inside the auth envelope. Address and
// phone number are deliberately absent; the password hash has no field at all.
type authUser struct {
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type authResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        authUser `json:"user"`
}

func newAuthResponse(token string, user *domain.User) authResponse {
	return authResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: authUser{
			UserID:   user.UserID.String(),
			FullName: user.FullName,
			Email:    user.Email,
		},
	}
}
