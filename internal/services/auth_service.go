// internal/services/auth_service.go
package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/campuscell/placement-backend/internal/apperrors"
	"github.com/campuscell/placement-backend/internal/config"
	"github.com/campuscell/placement-backend/internal/models"
	"github.com/campuscell/placement-backend/internal/utils"
)

type AuthService struct {
	db     *gorm.DB
	config *config.Config
}

func NewAuthService(db *gorm.DB, config *config.Config) *AuthService {
	return &AuthService{
		db:     db,
		config: config,
	}
}

type LoginRequest struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required"`
	Role     models.Role `json:"role,omitempty"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login authenticates by email and password. A role in the request must
// match the account's role; the portal shows separate login forms per role
// and a mismatch is treated the same as bad credentials.
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, apperrors.Validation(utils.ValidationMessage(err))
	}
	if req.Role != "" && !req.Role.Valid() {
		return nil, apperrors.Validation("unknown role")
	}

	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("invalid email or password")
		}
		return nil, apperrors.Internal(err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, apperrors.Validation("invalid email or password")
	}
	if req.Role != "" && user.Role != req.Role {
		return nil, apperrors.Validation("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role), s.config.JWT.AccessTokenTTL)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &LoginResponse{Token: token, User: &user}, nil
}

// GetProfile returns the authenticated user's own record.
func (s *AuthService) GetProfile(actor Actor) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, actor.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user not found")
		}
		return nil, apperrors.Internal(err)
	}
	return &user, nil
}
