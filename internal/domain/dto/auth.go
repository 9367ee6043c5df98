// Package dto defines Data Transfer Objects for authentication.
package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a user
// @Example {"email": "user@example.com", "password": "password123"}
type LoginRequest struct {
	// Email is the user's email address.
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
	// Password is the user's password.
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// RegisterRequest represents the JSON request body for the register endpoint.
//
// @Description Request to register a new user
// @Example {"email": "user@example.com", "username": "johndoe", "password": "password123"}
type RegisterRequest struct {
	// Email is the user's email address.
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
	// Username is the user's unique username.
	Username string `json:"username" binding:"required,min=3,max=30" example:"johndoe"`
	// Password is the user's password (minimum 6 characters).
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name RegisterRequest

// TokenResponse represents the JSON response body for login and register.
//
// @Description Successful authentication response with a JWT access token
type TokenResponse struct {
	// AccessToken is the JWT access token.
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// TokenType is always "bearer".
	TokenType string `json:"token_type" example:"bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"1800"`
	// User contains the authenticated user information.
	User UserResponse `json:"user"`
} // @name TokenResponse

// Claims represents the JWT claims carried by an access token.
// Kept in dto so service and middleware can share it without import cycles.
type Claims struct {
	UserID   primitive.ObjectID `json:"user_id"`
	Email    string             `json:"email"`
	Username string             `json:"username"`
	Tier     string             `json:"tier"`
}

// UserResponse represents user information in API responses.
type UserResponse struct {
	// Email is the user's email address.
	Email string `json:"email" example:"user@example.com"`
	// Username is the user's username.
	Username string `json:"username" example:"johndoe"`
	// Tier is the subscription tier.
	Tier string `json:"tier" example:"free"`
	// CardsThisMonth is the number of kit cards generated this month.
	CardsThisMonth int `json:"cards_this_month" example:"2"`
} // @name UserResponse

// Validate performs custom validation on the login request.
func (r *LoginRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}

// Validate performs custom validation on the register request.
func (r *RegisterRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "email is required"}
	}
	if len(r.Username) < 3 {
		return &ValidationError{Field: "username", Message: "username must be at least 3 characters"}
	}
	if len(r.Username) > 30 {
		return &ValidationError{Field: "username", Message: "username must be at most 30 characters"}
	}
	if len(r.Password) < 6 {
		return &ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	return nil
}
