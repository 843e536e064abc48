package controllers

import (
	"errors"
	"net/http"

	"pushnotify/models"
	"pushnotify/services/user"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	svc *user.Service
}

func NewUserController(svc *user.Service) *UserController { return &UserController{svc: svc} }

// @Summary Register user
// @Description Register a new user in the directory
// @Tags users
// @Accept json
// @Produce json
// @Param data body models.RegisterUserRequest true "Registration data"
// @Success 201 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/user/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var body models.RegisterUserRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user data"})
		return
	}

	u, err := uc.svc.Register(c.Request.Context(), user.RegisterRequest{
		Email:    body.Email,
		Role:     body.Role,
		Password: body.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "userId": u.ID})
}

// @Summary Check user exists
// @Description Look up a user by email
// @Tags users
// @Accept json
// @Produce json
// @Param data body models.ExistsRequest true "Email to check"
// @Success 200 {object} models.ExistsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/user/exists [post]
func (uc *UserController) Exists(c *gin.Context) {
	var body models.ExistsRequest
	if err := c.ShouldBindJSON(&body); err != nil || body.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	u, err := uc.svc.GetByEmail(c.Request.Context(), body.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if u == nil {
		c.JSON(http.StatusOK, models.ExistsResponse{Exists: false})
		return
	}
	c.JSON(http.StatusOK, models.ExistsResponse{Exists: true, User: u})
}

// @Summary Login
// @Description Authenticate a user and return a JWT token
// @Tags users
// @Accept json
// @Produce json
// @Param data body user.LoginRequest true "Credentials"
// @Success 200 {object} models.TokenResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/user/login [post]
func (uc *UserController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if c.BindJSON(&body) != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	token, err := uc.svc.Login(c.Request.Context(), user.LoginRequest{
		Email:    body.Email,
		Password: body.Password,
	})
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// @Summary List users
// @Description List all registered users ordered by email
// @Tags users
// @Produce json
// @Success 200 {object} models.UsersResponse
// @Failure 500 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/users [get]
func (uc *UserController) List(c *gin.Context) {
	users, err := uc.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, models.UsersResponse{Success: true, Users: users})
}
