package services

import (
	"errors"

	"github.com/devtasks/devtasks/internal/auth"
	"github.com/devtasks/devtasks/internal/models"
	"github.com/devtasks/devtasks/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db     *gorm.DB
	tokens *auth.Manager
}

func NewAuthService(db *gorm.DB, tokens *auth.Manager) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email,max=200"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// Register creates a new account. The email must not already be registered;
// matching is a case-sensitive exact comparison backed by the unique index.
func (s *AuthService) Register(req *RegisterRequest) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, response.NewConflict("email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// The unique index catches a concurrent registration of the same
		// email between the check and the insert.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewConflict("email already exists")
		}
		return nil, err
	}

	return &user, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password produce the same error, and the unknown-email path still pays for
// a hash comparison so the two are indistinguishable by timing.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			auth.BurnPassword(req.Password)
			return nil, response.NewAuthFailure("invalid email or password")
		}
		return nil, err
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, response.NewAuthFailure("invalid email or password")
	}

	token, err := s.tokens.Generate(&user)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}, nil
}

// GetUserByID retrieves a user by ID.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}
