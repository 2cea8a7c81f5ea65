package service

import (
	"errors"
	"fmt"

	"github.com/jaehopark/vocaweek/internal/dto"
	"github.com/jaehopark/vocaweek/internal/model"
	"github.com/jaehopark/vocaweek/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type UserService interface {
	CreateUser(req dto.UserCreateRequest) (*dto.UserResponse, error)
	GetUser(id uint) (*dto.UserResponse, error)
	GetAllUsers() ([]dto.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req dto.UserCreateRequest) (*dto.UserResponse, error) {
	user := model.User{Username: req.Username}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to create user")
		return nil, fmt.Errorf("user creation failed: %w", err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, &user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *userService) GetUser(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	var resp dto.UserResponse
	if err := copier.Copy(&resp, user); err != nil {
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	return &resp, nil
}

func (s *userService) GetAllUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("user listing failed: %w", err)
	}

	var resps []dto.UserResponse
	if err := copier.Copy(&resps, &users); err != nil {
		return nil, fmt.Errorf("error preparing user list response: %w", err)
	}
	return resps, nil
}
