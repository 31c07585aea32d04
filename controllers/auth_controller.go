package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"codesaathi_server/services"
)

// AuthController handles sign-up, sign-in and sign-out.
type AuthController struct {
	Auth *services.AuthService
}

// NewAuthController creates a new instance of AuthController
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// SignUp registers a new account and returns its session.
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		FullName string `json:"fullName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.Email == "" || request.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	session, err := c.Auth.SignUp(r.Context(), request.Email, request.Password, request.FullName)
	if err != nil {
		log.Println("Sign-up failed:", err)
		http.Error(w, err.Error(), serviceErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

// SignIn checks credentials and returns a session.
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	session, err := c.Auth.SignIn(r.Context(), request.Email, request.Password)
	if err != nil {
		log.Println("Sign-in failed:", err)
		http.Error(w, err.Error(), serviceErrorStatus(err))
		return
	}

	writeJSON(w, http.StatusOK, session)
}

// SignOut drops the caller's session.
func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	c.Auth.SignOut(sessionToken(r))
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

// GetSession returns the caller's session, if any.
func (c *AuthController) GetSession(w http.ResponseWriter, r *http.Request) {
	session := c.Auth.CurrentSession(sessionToken(r))
	if session == nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, session)
}
