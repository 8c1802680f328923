package services

import (
	"context"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"campusBack/internal/models"
	"campusBack/internal/repositories"
	"campusBack/utils"
)

const (
	tokenTTL       = 60 * time.Minute
	verifyTokenTTL = 24 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
}

type SignUpResponse struct {
	User              models.User `json:"user"`
	VerificationToken string      `json:"verification_token"`
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) (SignUpResponse, error) {
	exists, err := s.UserRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return SignUpResponse{}, err
	}
	if exists {
		return SignUpResponse{}, models.ErrDuplicateUsername
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return SignUpResponse{}, err
	}

	user, err := s.UserRepo.CreateUser(ctx, models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		Role:      "user",
	})
	if err != nil {
		return SignUpResponse{}, err
	}
	user.Password = ""

	// Delivery of the verification email is an external concern; the
	// token is handed back to the caller.
	verifyToken, err := s.TokenManager.NewJWT(user.ID, user.Role, verifyTokenTTL)
	if err != nil {
		return SignUpResponse{}, err
	}

	return SignUpResponse{User: user, VerificationToken: verifyToken}, nil
}

func (s *UserService) SignIn(ctx context.Context, username, password string) (models.Tokens, error) {
	user, err := s.UserRepo.GetUserByUsername(ctx, username)
	if err != nil {
		log.Printf("User not found: %s", username)
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("Invalid password for user: %s", username)
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	accessToken, err := s.TokenManager.NewJWT(user.ID, user.Role, tokenTTL)
	if err != nil {
		log.Printf("Error signing token: %v", err)
		return models.Tokens{}, err
	}

	refreshToken, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		log.Printf("Error generating refresh token: %v", err)
		return models.Tokens{}, err
	}

	return models.Tokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (s *UserService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.TokenManager.Parse(token)
	if err != nil {
		return models.ErrInvalidCredentials
	}
	return s.UserRepo.MarkVerified(ctx, claims.UserID)
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}
