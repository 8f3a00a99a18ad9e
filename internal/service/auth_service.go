package service

import (
	"context"
	"os"
	"time"

	"study-buddy-be/internal/dto"
	"study-buddy-be/internal/entity"
	"study-buddy-be/internal/pkg/serverutils"
	"study-buddy-be/internal/repository/specification"
	"study-buddy-be/internal/repository/unitofwork"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Signup(ctx context.Context, req *dto.AuthRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.AuthRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory) IAuthService {
	return &authService{
		uowFactory: uowFactory,
	}
}

func (s *authService) Signup(ctx context.Context, req *dto.AuthRequest) (*dto.SignupResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, serverutils.NewServerError("failed to look up username", err)
	}
	if existing != nil {
		return nil, serverutils.NewConflictError("Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, serverutils.NewServerError("failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Id:           uuid.New(),
		Username:     req.Username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		LastActiveAt: now,
	}

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, serverutils.NewServerError("failed to create user", err)
	}

	return &dto.SignupResponse{UserId: user.Id}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.AuthRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: req.Username})
	if err != nil {
		return nil, serverutils.NewServerError("failed to look up username", err)
	}
	if user == nil {
		return nil, serverutils.NewUnauthorizedError("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, serverutils.NewUnauthorizedError("Invalid credentials")
	}

	if err := uow.UserRepository().TouchLastActive(ctx, user.Id, time.Now()); err != nil {
		return nil, serverutils.NewServerError("failed to update last active", err)
	}

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, serverutils.NewServerError("failed to sign token", err)
	}

	return &dto.LoginResponse{
		UserId:      user.Id,
		Username:    user.Username,
		AccessToken: signedToken,
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, serverutils.NewServerError("failed to load user", err)
	}
	if user == nil {
		return nil, serverutils.NewNotFoundError("User not found")
	}

	return &dto.MeResponse{
		UserId:       user.Id,
		Username:     user.Username,
		CreatedAt:    user.CreatedAt,
		LastActiveAt: user.LastActiveAt,
	}, nil
}
