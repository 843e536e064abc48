package user

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"pushnotify/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// Service is the user directory. The notification core only reads from it;
// registration and login are HTTP-layer concerns.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{db: db} }

type RegisterRequest struct {
	Email    string
	Role     string
	Password string
}

type LoginRequest struct {
	Email    string
	Password string
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	u := models.User{Email: req.Email, Role: req.Role, LastSeen: time.Now()}
	if u.Role == "" {
		u.Role = "user"
	}

	if req.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
		if err != nil {
			return models.User{}, fmt.Errorf("failed to hash password: %w", err)
		}
		u.Password = string(hashedPassword)
	}

	existing, err := s.GetByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, err
	}
	if existing != nil {
		return models.User{}, fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
	}

	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (string, error) {
	u, err := s.GetByEmail(ctx, req.Email)
	if err != nil || u == nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": u.ID,
		"exp": time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	tokenString, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	return tokenString, nil
}

// GetById returns (nil, nil) when no user holds the id.
func (s *Service) GetById(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

// GetByEmail returns (nil, nil) when no user holds the email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("email").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Service) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Where("role = ?", role).Order("email").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
