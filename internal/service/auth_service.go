package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mabar/internal/auth"
	apperrors "mabar/internal/errors"
	"mabar/internal/mail"
	"mabar/internal/model"
	"mabar/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, OTP confirmation, and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*model.User, error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	ConfirmOtp(ctx context.Context, email string, otp int) error
}

type authService struct {
	users      repository.UserRepository
	otps       repository.OtpRepository
	jwtService *auth.JWTService
	sessions   auth.SessionStoreInterface
	mailer     mail.Mailer
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	users repository.UserRepository,
	otps repository.OtpRepository,
	jwtService *auth.JWTService,
	sessions auth.SessionStoreInterface,
	mailer mail.Mailer,
) AuthService {
	return &authService{
		users:      users,
		otps:       otps,
		jwtService: jwtService,
		sessions:   sessions,
		mailer:     mailer,
	}
}

// Register creates an unverified user, emails a 6-digit OTP, and persists the
// code for later confirmation.
func (s *authService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		IsVerified:   false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	otp := 100000 + rand.IntN(900000)
	if err := s.mailer.SendOtpEmail(email, otp); err != nil {
		return nil, fmt.Errorf("send otp email: %w", err)
	}

	if err := s.otps.Create(ctx, &model.OtpCode{UserID: user.ID, OtpCode: otp}); err != nil {
		return nil, fmt.Errorf("persist otp: %w", err)
	}

	return user, nil
}

// Login authenticates a verified user, issues a token, and records the live
// session for the schedule endpoint.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", nil, apperrors.ErrUserNotFound
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	// verification is checked before the password so an unverified account
	// always gets the same answer
	if !user.IsVerified {
		return "", nil, apperrors.ErrNotVerified
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	if err := s.sessions.MarkActive(ctx, user.ID, auth.AccessTokenExpiry); err != nil {
		return "", nil, fmt.Errorf("mark session active: %w", err)
	}

	return token, user, nil
}

// ConfirmOtp compares the submitted code with the stored one. A match flips
// is_verified and consumes the OTP row atomically; a mismatch leaves the row
// intact so the user can retry.
func (s *authService) ConfirmOtp(ctx context.Context, email string, otp int) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("find user: %w", err)
	}

	stored, err := s.otps.FindByUserID(ctx, user.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrOtpNotFound
		}
		return fmt.Errorf("find otp: %w", err)
	}

	if stored.OtpCode != otp {
		return apperrors.ErrWrongOtp
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	return nil
}
