package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"timetrack-service/internal/models"
	"timetrack-service/internal/repository"
	"timetrack-service/internal/utils"
)

const tokenTTL = 30 * 24 * time.Hour

// Claims carries the identity payload inside the bearer token.
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and verifies bearer tokens and manages accounts.
type AuthService struct {
	users  repository.UserRepository
	secret []byte
}

func NewAuthService(users repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret)}
}

// Register creates an account. The first account in an empty database becomes
// the admin; everyone after that is a regular user.
func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if _, err := s.users.GetByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "could not check existing email")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := models.RoleUser
	count, err := s.users.Count()
	if err != nil {
		return nil, errors.Wrap(err, "could not count users")
	}
	if count == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(user); err != nil {
		return nil, errors.Wrap(err, "could not create user")
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user, Token: token}, nil
}

// Login verifies credentials and returns the user with a fresh token.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, "could not look up user")
	}
	if !utils.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{User: user, Token: token}, nil
}

// GetUser returns the account for a principal.
func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	return s.users.GetByID(id)
}

// ListUsers returns all accounts.
func (s *AuthService) ListUsers() ([]models.User, error) {
	return s.users.List()
}

// IssueToken signs a bearer token carrying the user's id and role.
func (s *AuthService) IssueToken(user *models.User) (string, error) {
	claims := &Claims{
		UserID: user.ID.String(),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies a bearer token and recovers the principal.
func (s *AuthService) ParseToken(tokenString string) (models.Principal, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return models.Principal{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.Principal{}, errors.New("invalid token")
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return models.Principal{}, errors.Wrap(err, "invalid user id in token")
	}
	return models.Principal{UserID: userID, Role: claims.Role}, nil
}
