package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"hri-companion-be/internal/config"
	"hri-companion-be/internal/dto"
	"hri-companion-be/internal/entity"
	"hri-companion-be/internal/pkg/apperror"
	"hri-companion-be/internal/pkg/logger"
	"hri-companion-be/internal/pkg/security"
	"hri-companion-be/internal/pkg/serverutils"
	"hri-companion-be/internal/repository/contract"
	"hri-companion-be/pkg/events"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
}

type authService struct {
	userRepo       contract.IUserRepository
	jwtCfg         *config.JWTConfig
	eventPublisher *events.Publisher
	log            logger.ILogger
}

func NewAuthService(userRepo contract.IUserRepository, jwtCfg *config.JWTConfig, eventPublisher *events.Publisher, log logger.ILogger) IAuthService {
	return &authService{
		userRepo:       userRepo,
		jwtCfg:         jwtCfg,
		eventPublisher: eventPublisher,
		log:            log,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	// 1. Reject duplicate email (case-sensitive exact match). The
	// repository never checks uniqueness; this is the only guard.
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict("email is already registered")
	}

	// 2. Hash password
	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// 3. Create user row; last login is the registration time.
	now := time.Now().UTC().Truncate(time.Second)
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         entity.UserRole(req.Role),
		CreatedAt:    now,
		UpdatedAt:    now,
		LastLoginAt:  &now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// 4. Issue session token
	token, err := serverutils.CreateAccessToken(s.jwtCfg, user.Id.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeUserRegistered, map[string]interface{}{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
	})

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("user not found")
	}

	if !security.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, apperror.Validation("invalid credentials")
	}

	// Stamp the login. Read-modify-write on the user row; concurrent
	// logins race and the later write wins.
	now := time.Now().UTC().Truncate(time.Second)
	updated, err := s.userRepo.Update(ctx, user.Id, map[string]interface{}{
		"last_login_at": now,
		"updated_at":    now,
	})
	if err != nil {
		return nil, err
	}

	token, err := serverutils.CreateAccessToken(s.jwtCfg, updated.Id.String(), updated.Email, string(updated.Role))
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeUserLogin, map[string]interface{}{
		"user_id": updated.Id.String(),
	})

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserResponse(updated),
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userId)
	if err != nil {
		return nil, err
	}
	response := toUserResponse(user)
	return &response, nil
}

func (s *authService) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if s.eventPublisher == nil {
		return
	}
	event := events.BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now()}
	if err := s.eventPublisher.Publish(ctx, event); err != nil {
		s.log.Warn("auth", "failed to publish event", map[string]interface{}{
			"event": eventType, "error": err.Error(),
		})
	}
}

func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		Id:          user.Id,
		Email:       user.Email,
		FullName:    user.FullName,
		Role:        string(user.Role),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
		LastLoginAt: user.LastLoginAt,
	}
}
