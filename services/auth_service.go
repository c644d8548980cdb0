package services

import (
	"errors"

	"github.com/syauqinrm/blog-backend/models"
	"github.com/syauqinrm/blog-backend/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	userRepo     repositories.UserRepository
	tokenService TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokenService TokenService) AuthService {
	return &authService{userRepo: userRepo, tokenService: tokenService}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	role, err := models.NormalizeRole(req.Role)
	if err != nil {
		return nil, err
	}

	// Check if the email is already taken
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err == nil && existingUser != nil {
		return nil, models.ErrorConflict{Message: "email is already in use"}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrorInternalServer{Message: "failed to check existing user"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to hash password"}
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
	}

	if err := s.userRepo.Create(user); err != nil {
		// A concurrent registration can slip past the precheck and hit the
		// unique index instead.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "email is already in use"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to create user"}
	}

	token, err := s.tokenService.Issue(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	// The same message for an unknown email and a wrong password, so the
	// response cannot be used to enumerate accounts.
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid email or password"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load user"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid email or password"}
	}

	token, err := s.tokenService.Issue(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load user"}
	}
	return user, nil
}
