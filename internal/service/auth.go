package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kitforge/kitforge-service/internal/domain/dto"
	"github.com/kitforge/kitforge-service/internal/domain/model"
	"github.com/kitforge/kitforge-service/internal/repository"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserExists is returned when trying to register an existing user.
	ErrUserExists = errors.New("user already exists")
	// ErrInvalidToken is returned when token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// DefaultTokenDuration is the access token lifetime when none is configured.
const DefaultTokenDuration = 30 * time.Minute

// ClaimsWithJWT extends dto.Claims with JWT RegisteredClaims for token generation.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// AuthService provides authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.TokenResponse, error)
	Register(ctx context.Context, email, username, password string) (*dto.TokenResponse, error)
	ValidateToken(tokenString string) (*dto.Claims, error)
}

// AuthConfig holds the signing parameters for access tokens.
type AuthConfig struct {
	JWTSecret     string
	TokenDuration time.Duration
}

// AuthServiceImpl implements AuthService with bcrypt password hashing and
// HS256 signed access tokens. Tokens are stateless; there is no refresh
// flow, clients re-authenticate when the access token expires.
type AuthServiceImpl struct {
	userRepo      repository.UserRepositoryInterface
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepositoryInterface, cfg AuthConfig) AuthService {
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = DefaultTokenDuration
	}

	return &AuthServiceImpl{
		userRepo:      userRepo,
		jwtSecret:     []byte(cfg.JWTSecret),
		tokenDuration: duration,
	}
}

// Login authenticates a user and returns a signed access token.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByEmailForAuth(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenResponse(user)
}

// Register creates a new user and returns a signed access token.
// New users start on the free tier.
func (s *AuthServiceImpl) Register(ctx context.Context, email, username, password string) (*dto.TokenResponse, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	existingByUsername, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existingByUsername != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
		Tier:     model.TierFree,
		Active:   true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.tokenResponse(user)
}

// ValidateToken parses and verifies an access token, returning its claims.
func (s *AuthServiceImpl) ValidateToken(tokenString string) (*dto.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok {
		return nil, ErrInvalidToken
	}

	return &claims.Claims, nil
}

func (s *AuthServiceImpl) tokenResponse(user *model.User) (*dto.TokenResponse, error) {
	now := time.Now()
	claims := ClaimsWithJWT{
		Claims: dto.Claims{
			UserID:   user.ID,
			Email:    user.Email,
			Username: user.Username,
			Tier:     user.Tier,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.tokenDuration.Seconds()),
		User: dto.UserResponse{
			Email:          user.Email,
			Username:       user.Username,
			Tier:           user.Tier,
			CardsThisMonth: user.CardsThisMonth,
		},
	}, nil
}
