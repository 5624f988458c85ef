package services

import (
	"errors"
	"net/http"

	"cargolink_backend/internal/auth"
	"cargolink_backend/internal/logger"
	"cargolink_backend/internal/models"
	"cargolink_backend/internal/repositories"
	"cargolink_backend/internal/services/dto"
	"cargolink_backend/internal/validator"
	"cargolink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	validator   *validator.Validator
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	v *validator.Validator,
) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		validator:   v,
	}
}

// Register создает пользователя вместе с профилем одной транзакцией
func (s *authService) Register(req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, apperrors.ErrAlreadyExists(repositories.ErrUserAlreadyExists)
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.TransientError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
	}
	profile := &models.Profile{
		CompanyName:   req.CompanyName,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
	}

	err = s.userRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.CreateInTx(tx, user); err != nil {
			return err
		}
		profile.UserID = user.ID
		return s.profileRepo.CreateInTx(tx, profile)
	})
	if err != nil {
		return nil, apperrors.TransientError(err)
	}

	logger.Info("user registered", "user_id", user.ID)
	return s.buildAuthResponse(user, profile)
}

func (s *authService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
		}
		return nil, apperrors.TransientError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	}

	return s.buildAuthResponse(user, user.Profile)
}

func (s *authService) buildAuthResponse(user *models.User, profile *models.Profile) (*dto.AuthResponse, error) {
	isAdmin := profile != nil && profile.IsAdmin

	token, err := auth.GenerateToken(user.ID, isAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.AuthResponse{
		AccessToken: token,
		User: &dto.UserResponse{
			ID:    user.ID,
			Email: user.Email,
		},
	}
	if profile != nil {
		resp.Profile = buildProfileResponse(profile)
	}
	return resp, nil
}
