package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lmartinezr/authcore/internal/common"
	"github.com/lmartinezr/authcore/internal/server/services"
)

type signupRequest struct {
	FullName        string `json:"fullName"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Email           string `json:"email"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"userId"`
	FullName string `json:"fullName"`
}

type errorResponse struct {
	Message string `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error(context.Background(), "error encoding response", "error", err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Message: message})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.logger.Info(ctx, "Signup request", "username", req.Username)

	result, err := s.users.Signup(ctx, services.SignupRequest{
		FullName:        req.FullName,
		Username:        req.Username,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Email:           req.Email,
	})
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			s.writeError(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, common.ErrorUsernameTaken):
			s.writeError(w, http.StatusBadRequest, common.ErrorUsernameTaken.Error())
		default:
			s.logger.Error(ctx, "signup failed", "error", err.Error())
			s.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.logger.Info(ctx, "Registered", "username", req.Username, "user_id", result.UserID)
	s.writeJSON(w, http.StatusCreated, authResponse{Token: result.Token, UserID: result.UserID, FullName: result.FullName})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			s.writeError(w, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, common.ErrorInvalidCredentials):
			s.writeError(w, http.StatusBadRequest, common.ErrorInvalidCredentials.Error())
		default:
			s.logger.Error(ctx, "login failed", "error", err.Error())
			s.writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	s.writeJSON(w, http.StatusOK, authResponse{Token: result.Token, UserID: result.UserID, FullName: result.FullName})
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// handleMe returns the identity carried by the validated token.
func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	claims := claimsFromContext(r.Context())
	if claims == nil {
		s.writeError(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"userId":   claims.UserID,
		"username": claims.Username,
	})
}
