package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/HAS1ELB/INTELLIPATH/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByUsernameOrEmail(ctx context.Context, identifier string) (*models.User, error)
	Exists(ctx context.Context, username, email string) (bool, error)
	TouchLastLogin(ctx context.Context, userID string) error
}

// UserService handles registration, login and session tokens. Tokens are
// JWTs valid for one week, mirroring the session lifetime of the stored
// variant.
type UserService struct {
	Repo      UserStore
	jwtSecret []byte
}

func NewUserService(repo UserStore, jwtSecret string) *UserService {
	return &UserService{Repo: repo, jwtSecret: []byte(jwtSecret)}
}

type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func hashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account and returns its user ID.
func (s *UserService) Register(ctx context.Context, username, email, password string) (string, error) {
	exists, err := s.Repo.Exists(ctx, username, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", fmt.Errorf("username or email already in use")
	}

	salt := uuid.NewString()
	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hashPassword(password, salt),
		Salt:         salt,
		CreatedAt:    time.Now(),
		LastLogin:    time.Now(),
		IsActive:     true,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return "", err
	}
	return user.ID, nil
}

// Login verifies credentials and returns a signed session token.
func (s *UserService) Login(ctx context.Context, identifier, password string) (string, *models.User, error) {
	user, err := s.Repo.FindByUsernameOrEmail(ctx, identifier)
	if err != nil {
		return "", nil, fmt.Errorf("user not found or inactive")
	}
	if hashPassword(password, user.Salt) != user.PasswordHash {
		return "", nil, fmt.Errorf("incorrect password")
	}

	// The login itself is already verified; a failed bookkeeping write must
	// not lock the user out.
	if err := s.Repo.TouchLastLogin(ctx, user.ID); err != nil {
		log.Printf("failed to update last login for user %s: %v", user.ID, err)
	}

	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(7 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   user.ID,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ValidateToken parses a session token and returns its claims.
func (s *UserService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
