package services

import (
	"context"
	"errors"
	"time"

	"formbox.link/configs"
	"formbox.link/configs/configslog"
	"formbox.link/models"
	"formbox.link/repositories"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceError is the error kind handlers translate into HTTP statuses.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrAuthInvalidCredentials AuthServiceError = "invalid email or password"
	ErrAuthEmailTaken         AuthServiceError = "email is already registered"
	ErrAuthInvalidInput       AuthServiceError = "name, email and password are required"
	ErrAuthInvalidToken       AuthServiceError = "invalid or expired token"
)

const tokenTTL = 24 * time.Hour

// RegisterInput carries the fields needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// IAuthService issues and verifies the bearer tokens the API authenticates
// with.
type IAuthService interface {
	Register(ctx context.Context, input RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ParseToken(token string) (uint, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type AuthService struct {
	repo repositories.IUserRepository
	db   *gorm.DB
}

// NewAuthService wires an auth service onto the given connection.
func NewAuthService(db *gorm.DB) IAuthService {
	return &AuthService{
		repo: repositories.NewUserRepository(db),
		db:   db,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*models.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return nil, ErrAuthInvalidInput
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrAuthEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, &user); err != nil {
		configslog.Log.Error("Register failed", zap.String("email", input.Email), zap.Error(err))
		return nil, err
	}
	configslog.SLog.Infof("user registered: id=%d email=%s", user.ID, user.Email)
	return &user, nil
}

// Login verifies the credentials and returns a signed access token. Lookup
// and compare failures collapse into one error so callers cannot probe which
// emails exist.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrAuthInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(configs.JWTSecret())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// ParseToken validates a bearer token and extracts the acting user id.
func (s *AuthService) ParseToken(token string) (uint, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrAuthInvalidToken
		}
		return configs.JWTSecret(), nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrAuthInvalidToken
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID <= 0 {
		return 0, ErrAuthInvalidToken
	}
	return uint(rawID), nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAuthInvalidToken
		}
		return nil, err
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
