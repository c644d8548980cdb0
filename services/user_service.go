package services

import (
	"errors"

	"github.com/syauqinrm/blog-backend/models"
	"github.com/syauqinrm/blog-backend/policy"
	"github.com/syauqinrm/blog-backend/repositories"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService interface {
	GetUsers(actor policy.Actor) ([]models.User, error)
	GetUser(actor policy.Actor, id uint) (*models.User, error)
	UpdateUser(actor policy.Actor, id uint, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(actor policy.Actor, id uint) error
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers(actor policy.Actor) ([]models.User, error) {
	decision := policy.Authorize(actor, policy.ActionList, policy.Resource{Kind: policy.ResourceUser})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, models.ErrorInternalServer{Message: "failed to load users"}
	}
	return users, nil
}

func (s *userService) GetUser(actor policy.Actor, id uint) (*models.User, error) {
	user, err := s.loadUser(id)
	if err != nil {
		return nil, err
	}

	decision := policy.Authorize(actor, policy.ActionRead, policy.Resource{
		Kind:       policy.ResourceUser,
		OwnerID:    user.ID,
		TargetRole: user.Role,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(actor policy.Actor, id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.loadUser(id)
	if err != nil {
		return nil, err
	}

	decision := policy.Authorize(actor, policy.ActionUpdate, policy.Resource{
		Kind:       policy.ResourceUser,
		OwnerID:    user.ID,
		TargetRole: user.Role,
	})
	if err := decision.Err(); err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.ErrorInternalServer{Message: "failed to hash password"}
		}
		user.Password = string(hashedPassword)
	}
	if req.Role != nil {
		// Only reader and writer are reachable here; editor is rejected by
		// NormalizeRole so no mutation path can ever produce an editor.
		role, err := models.NormalizeRole(*req.Role)
		if err != nil {
			return nil, err
		}
		user.Role = role
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Message: "email is already in use"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to update user"}
	}

	return user, nil
}

func (s *userService) DeleteUser(actor policy.Actor, id uint) error {
	user, err := s.loadUser(id)
	if err != nil {
		return err
	}

	decision := policy.Authorize(actor, policy.ActionDelete, policy.Resource{
		Kind:       policy.ResourceUser,
		OwnerID:    user.ID,
		TargetRole: user.Role,
	})
	if err := decision.Err(); err != nil {
		return err
	}

	if err := s.userRepo.Delete(user.ID); err != nil {
		return models.ErrorInternalServer{Message: "failed to delete user"}
	}

	return nil
}

func (s *userService) loadUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, models.ErrorInternalServer{Message: "failed to load user"}
	}
	return user, nil
}
