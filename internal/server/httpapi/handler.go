package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/feelflow/internal/common"
	"github.com/gin-gonic/gin"
)

const (
	msgCredentialsRequired = "Email and password are required"
	msgTokenRequired       = "Token is required"
)

// bind decodes the JSON body into req and checks its required fields.
// Any shape mismatch is reported as a missing field.
func (s *HTTPServer) bind(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return common.ErrorMissingField
	}
	if err := s.validate.Struct(req); err != nil {
		return common.ErrorMissingField
	}
	return nil
}

func (s *HTTPServer) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := s.bind(c, &req); err != nil {
		s.writeError(c, err, msgCredentialsRequired)
		return
	}

	res, err := s.users.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err, msgCredentialsRequired)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "user_id", res.User.UserID)
	c.JSON(http.StatusCreated, response{
		Success: true,
		Message: "Account created successfully",
		Token:   res.Token,
		User:    &res.User,
	})
}

func (s *HTTPServer) Login(c *gin.Context) {
	var req credentialsRequest
	if err := s.bind(c, &req); err != nil {
		s.writeError(c, err, msgCredentialsRequired)
		return
	}

	res, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err, msgCredentialsRequired)
		return
	}

	c.JSON(http.StatusOK, response{
		Success: true,
		Message: "Logged in successfully",
		Token:   res.Token,
		User:    &res.User,
	})
}

func (s *HTTPServer) Verify(c *gin.Context) {
	var req verifyRequest
	if err := s.bind(c, &req); err != nil {
		s.writeError(c, err, msgTokenRequired)
		return
	}

	user, err := s.users.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		s.writeError(c, err, msgTokenRequired)
		return
	}

	c.JSON(http.StatusOK, response{Success: true, User: user})
}

func (s *HTTPServer) Logout(c *gin.Context) {
	if err := s.users.Logout(c.Request.Context()); err != nil {
		s.writeError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, response{Success: true, Message: "Logged out successfully"})
}

func (s *HTTPServer) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "OK", Message: "Feelflow API is running"})
}
