package services

import (
	"errors"
	"time"

	"knightspantry/models"
	"knightspantry/repositories"

	"github.com/dgrijalva/jwt-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenBlacklisted   = errors.New("token has been blacklisted")
)

const tokenTTL = 7 * 24 * time.Hour

type SignupInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	UcfID     string
}

// TokenClaims is the decoded identity attached to authenticated requests.
type TokenClaims struct {
	UserID primitive.ObjectID
	Email  string
}

type IAuthService interface {
	Signup(input SignupInput) (*models.User, string, error)
	Login(email, password string) (*models.User, string, error)
	Logout(tokenString string) error
	VerifyToken(tokenString string) (*TokenClaims, error)
}

type AuthService struct {
	users  repositories.IUserRepository
	tokens repositories.ITokenRepository
	secret []byte
}

func NewAuthService(users repositories.IUserRepository, tokens repositories.ITokenRepository, secret []byte) IAuthService {
	return &AuthService{users: users, tokens: tokens, secret: secret}
}

func (s *AuthService) Signup(input SignupInput) (*models.User, string, error) {
	if existing, err := s.users.FindByEmail(input.Email); err == nil && existing != nil {
		return nil, "", repositories.ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        input.Email,
		Password:     string(hashed),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		UcfID:        input.UcfID,
		DonatedItems: []models.DonatedItem{},
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.createToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err == repositories.ErrUserNotFound {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.createToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout blacklists the presented token until its natural expiry.
func (s *AuthService) Logout(tokenString string) error {
	token, err := jwt.Parse(tokenString, s.keyFunc)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	exp, _ := claims["exp"].(float64)
	return s.tokens.Blacklist(tokenString, int64(exp))
}

func (s *AuthService) VerifyToken(tokenString string) (*TokenClaims, error) {
	blacklisted, err := s.tokens.IsBlacklisted(tokenString)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, ErrTokenBlacklisted
	}

	token, err := jwt.Parse(tokenString, s.keyFunc)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	idHex, _ := claims["userId"].(string)
	userID, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)
	return &TokenClaims{UserID: userID, Email: email}, nil
}

func (s *AuthService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return s.secret, nil
}

func (s *AuthService) createToken(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": user.ID.Hex(),
		"email":  user.Email,
		"exp":    time.Now().Add(tokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}
