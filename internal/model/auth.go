package model

import "github.com/golang-jwt/jwt/v5"

// AdvisorClaims are JWT claims for advisor authentication
type AdvisorClaims struct {
	AdvisorID string `json:"advisorId"`
	jwt.RegisteredClaims
}

// LoginRequest is the request body for advisor login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	Token     string `json:"token"`
	AdvisorID string `json:"advisorId"`
}
