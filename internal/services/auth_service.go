package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"registration-service/internal/models"
	"registration-service/internal/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo    repository.IUserRepository
	sessionRepo repository.SessionRepository
	jwtService  *JWTService
	sessionTTL  time.Duration
}

func NewAuthService(userRepo repository.IUserRepository, sessionRepo repository.SessionRepository, jwtService *JWTService, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		sessionTTL:  sessionTTL,
	}
}

// Login verifies credentials, opens a Redis-backed session and returns
// a signed token carrying the session ID.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		slog.Info("login rejected, user lookup failed", "email", req.Email)
		return nil, fmt.Errorf("invalid email or password")
	}

	if !user.IsActive {
		slog.Info("login rejected, user inactive", "user_id", user.ID)
		return nil, fmt.Errorf("account is deactivated")
	}

	if !s.userRepo.CheckPasswordHash(req.Password, user.PasswordHash) {
		slog.Info("login rejected, bad password", "user_id", user.ID)
		return nil, fmt.Errorf("invalid email or password")
	}

	session := &models.UserSession{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: time.Now(),
	}

	if err := s.sessionRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, session.ID, user.Email, user.Role, s.sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	slog.Info("user logged in", "user_id", user.ID, "role", user.Role, "session_id", session.ID)

	return &models.LoginResponse{
		Token: token,
		User:  user,
	}, nil
}

// Logout tears down the Redis session named in the token.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessionRepo.DeleteSession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	slog.Info("session closed", "session_id", sessionID)
	return nil
}

// Authenticate validates a token and confirms its session is still live.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.Claims, error) {
	claims, err := s.jwtService.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	active, err := s.sessionRepo.IsSessionActive(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if !active {
		return nil, fmt.Errorf("session is no longer active")
	}

	// Sliding expiry: each authenticated call pushes the window out
	if err := s.sessionRepo.RenewSession(ctx, claims.SessionID); err != nil {
		slog.Error("failed to renew session", "session_id", claims.SessionID, "error", err)
	}

	return claims, nil
}

// GetCurrentUser resolves the authenticated user record.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return user, nil
}
