package httpapi

import "github.com/dmitrijs2005/feelflow/internal/server/models"

type credentialsRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type verifyRequest struct {
	Token string `json:"token" validate:"required"`
}

type response struct {
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
	Token   string           `json:"token,omitempty"`
	User    *models.UserView `json:"user,omitempty"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
