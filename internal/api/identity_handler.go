package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/commercekit/storefront/errors"
	"github.com/commercekit/storefront/internal/identity"
	"github.com/commercekit/storefront/server"
	"github.com/commercekit/storefront/validation"
)

type identityHandler struct {
	svc *identity.Service
}

// register handles POST /register.
func (h *identityHandler) register(c *gin.Context) {
	var in identity.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body."))
		return
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		server.RespondWithError(c, apperrors.Validation("Name, email, and password are required."))
		return
	}
	if err := validation.Validate(in); err != nil {
		server.RespondWithError(c, err)
		return
	}

	user, err := h.svc.Register(c.Request.Context(), in)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondCreated(c, gin.H{
		"message": "User registered successfully!",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /login.
func (h *identityHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body."))
		return
	}
	if req.Email == "" || req.Password == "" {
		server.RespondWithError(c, apperrors.Validation("Email and password are required."))
		return
	}

	token, _, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}

	server.RespondOK(c, gin.H{
		"message": "Login successful!",
		"token":   token,
	})
}

// listUsers handles GET /users (gated).
func (h *identityHandler) listUsers(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, users)
}

// getUser handles GET /users/:id (gated).
func (h *identityHandler) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid user ID."))
		return
	}

	user, svcErr := h.svc.GetByID(c.Request.Context(), id)
	if svcErr != nil {
		server.RespondWithError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, user)
}
