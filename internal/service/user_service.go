package service

import (
	"errors"

	"vidnest-go/internal/api/dto"
	"vidnest-go/internal/repository"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetPublicProfile 获取用户公开信息（受限投影）
func (s *UserService) GetPublicProfile(userID int64) (*dto.UserBrief, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if user.IsDelete != 0 {
		return nil, ErrUserNotFound
	}

	return toUserBrief(user), nil
}
