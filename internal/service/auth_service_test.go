package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mabar/internal/auth"
	apperrors "mabar/internal/errors"
	"mabar/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) MarkVerified(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) ListWithMemberships(ctx context.Context, ids []uint) ([]model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockOtpRepository is a mock implementation of OtpRepository.
type MockOtpRepository struct {
	mock.Mock
}

func (m *MockOtpRepository) Create(ctx context.Context, otp *model.OtpCode) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOtpRepository) FindByUserID(ctx context.Context, userID uint) (*model.OtpCode, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OtpCode), args.Error(1)
}

// MockSessionStore is a mock implementation of SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) MarkActive(ctx context.Context, userID uint, ttl time.Duration) error {
	args := m.Called(ctx, userID, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) ActiveUserIDs(ctx context.Context) ([]uint, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// MockMailer is a mock implementation of mail.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendOtpEmail(to string, otp int) error {
	args := m.Called(to, otp)
	return args.Error(0)
}

func newAuthService(users *MockUserRepository, otps *MockOtpRepository, sessions *MockSessionStore, mailer *MockMailer) AuthService {
	jwtService := auth.NewJWTService("test-secret")
	return NewAuthService(users, otps, jwtService, sessions, mailer)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		setupMock     func(*MockUserRepository, *MockOtpRepository, *MockMailer)
		expectedError error
	}{
		{
			name:  "successful registration",
			email: "test@example.com",
			setupMock: func(users *MockUserRepository, otps *MockOtpRepository, mailer *MockMailer) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				users.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Run(func(args mock.Arguments) {
						args.Get(1).(*model.User).ID = 7
					}).Return(nil)
				mailer.On("SendOtpEmail", "test@example.com", mock.AnythingOfType("int")).Return(nil)
				otps.On("Create", mock.Anything, mock.AnythingOfType("*model.OtpCode")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:  "email already registered",
			email: "existing@example.com",
			setupMock: func(users *MockUserRepository, otps *MockOtpRepository, mailer *MockMailer) {
				users.On("FindByEmail", mock.Anything, "existing@example.com").
					Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockOtps := new(MockOtpRepository)
			mockSessions := new(MockSessionStore)
			mockMailer := new(MockMailer)
			tt.setupMock(mockUsers, mockOtps, mockMailer)

			service := newAuthService(mockUsers, mockOtps, mockSessions, mockMailer)
			user, err := service.Register(context.Background(), "Test User", tt.email, "password123", model.RoleUser)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.False(t, user.IsVerified)
				assert.NotEmpty(t, user.PasswordHash)

				// exactly one OTP row tied to the new user id, in range
				otpCalls := 0
				for _, call := range mockOtps.Calls {
					if call.Method == "Create" {
						otpCalls++
						otp := call.Arguments.Get(1).(*model.OtpCode)
						assert.Equal(t, uint(7), otp.UserID)
						assert.GreaterOrEqual(t, otp.OtpCode, 100000)
						assert.LessOrEqual(t, otp.OtpCode, 999999)
					}
				}
				assert.Equal(t, 1, otpCalls)
			}

			mockUsers.AssertExpectations(t)
			mockOtps.AssertExpectations(t)
			mockMailer.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(users *MockUserRepository, sessions *MockSessionStore) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           3,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					Role:         model.RoleUser,
					IsVerified:   true,
				}, nil)
				sessions.On("MarkActive", mock.Anything, uint(3), auth.AccessTokenExpiry).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "notfound@example.com",
			password: "password123",
			setupMock: func(users *MockUserRepository, sessions *MockSessionStore) {
				users.On("FindByEmail", mock.Anything, "notfound@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "nope",
			setupMock: func(users *MockUserRepository, sessions *MockSessionStore) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           3,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					IsVerified:   true,
				}, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unverified account with correct password",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(users *MockUserRepository, sessions *MockSessionStore) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           3,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					IsVerified:   false,
				}, nil)
			},
			expectedError: apperrors.ErrNotVerified,
		},
		{
			name:     "unverified account with wrong password",
			email:    "test@example.com",
			password: "nope",
			setupMock: func(users *MockUserRepository, sessions *MockSessionStore) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{
					ID:           3,
					Email:        "test@example.com",
					PasswordHash: string(hashedPassword),
					IsVerified:   false,
				}, nil)
			},
			expectedError: apperrors.ErrNotVerified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockSessions := new(MockSessionStore)
			tt.setupMock(mockUsers, mockSessions)

			service := newAuthService(mockUsers, new(MockOtpRepository), mockSessions, new(MockMailer))
			token, user, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			}

			mockUsers.AssertExpectations(t)
			mockSessions.AssertExpectations(t)
		})
	}
}

func TestAuthService_ConfirmOtp(t *testing.T) {
	tests := []struct {
		name           string
		otp            int
		setupMock      func(*MockUserRepository, *MockOtpRepository)
		expectedError  error
		expectVerified bool
	}{
		{
			name: "correct otp verifies and consumes the code",
			otp:  123456,
			setupMock: func(users *MockUserRepository, otps *MockOtpRepository) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{ID: 3, Email: "test@example.com"}, nil)
				otps.On("FindByUserID", mock.Anything, uint(3)).Return(&model.OtpCode{UserID: 3, OtpCode: 123456}, nil)
				users.On("MarkVerified", mock.Anything, uint(3)).Return(nil)
			},
			expectedError:  nil,
			expectVerified: true,
		},
		{
			name: "wrong otp leaves the code in place",
			otp:  111111,
			setupMock: func(users *MockUserRepository, otps *MockOtpRepository) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{ID: 3, Email: "test@example.com"}, nil)
				otps.On("FindByUserID", mock.Anything, uint(3)).Return(&model.OtpCode{UserID: 3, OtpCode: 123456}, nil)
			},
			expectedError: apperrors.ErrWrongOtp,
		},
		{
			name: "no pending otp",
			otp:  123456,
			setupMock: func(users *MockUserRepository, otps *MockOtpRepository) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(&model.User{ID: 3, Email: "test@example.com"}, nil)
				otps.On("FindByUserID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrOtpNotFound,
		},
		{
			name: "unknown email",
			otp:  123456,
			setupMock: func(users *MockUserRepository, otps *MockOtpRepository) {
				users.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUserRepository)
			mockOtps := new(MockOtpRepository)
			tt.setupMock(mockUsers, mockOtps)

			service := newAuthService(mockUsers, mockOtps, new(MockSessionStore), new(MockMailer))
			err := service.ConfirmOtp(context.Background(), "test@example.com", tt.otp)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			if !tt.expectVerified {
				mockUsers.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything)
			}
			mockUsers.AssertExpectations(t)
			mockOtps.AssertExpectations(t)
		})
	}
}
