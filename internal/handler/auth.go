package handler

import (
	"net/http"

	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/apierror"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/dto"
	"github.com/mismumbai-tush/ginza-industries-order-portal/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Register creates a salesperson account. Business failures (duplicate
// email, backend permission problems) come back as 200 with success=false —
// the structured result is the contract, not the status code.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result := h.svc.Register(c.Request.Context(), req)
	status := http.StatusOK
	if result.Success {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Ghost creates a placeholder user for flows that need an owner record
// without real registration.
func (h *AuthHandler) Ghost(c *gin.Context) {
	var req dto.GhostUserRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user := h.svc.CreateGhostUser(c.Request.Context(), req.FullName, req.BranchID)
	if user == nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not create ghost user"))
		return
	}
	c.JSON(http.StatusCreated, user)
}

// ── Users Handler ────────────────────────────────────────────────────────────

type UsersHandler struct{ svc service.AuthService }

func NewUsersHandler(svc service.AuthService) *UsersHandler { return &UsersHandler{svc: svc} }

func (h *UsersHandler) List(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("could not list users"))
		return
	}
	c.JSON(http.StatusOK, users)
}
