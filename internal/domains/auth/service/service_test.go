package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/courtbook/backend/internal/domains/user/dto"
	"github.com/courtbook/backend/internal/domains/user/mock"
	"github.com/courtbook/backend/internal/domains/user/repository"
	"github.com/courtbook/backend/pkg/failure"
	"github.com/courtbook/backend/pkg/jwt"
	log "github.com/courtbook/backend/pkg/logger/mock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func init() {
	jwt.Initialize("test-app", "test-secret-key", time.Hour, time.Hour*24)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	mockError := errors.New("error")

	registerReq := dto.UserRegisterRequest{
		Email:    "test@gmail.com",
		Password: "password123",
		Name:     "Test User",
	}

	mockID := uuid.New()
	mockUser := repository.User{
		ID:         pgtype.UUID{Bytes: mockID, Valid: true},
		Email:      "test@gmail.com",
		Password:   pgtype.Text{String: "hashedpassword", Valid: true},
		Level:      "1",
		FullName:   pgtype.Text{String: "Test User", Valid: true},
		IsVerified: pgtype.Bool{Bool: false, Valid: true},
		CreatedAt:  pgtype.Timestamp{Time: time.Now(), Valid: true},
	}

	t.Run("error: transaction begin failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())
		mockPgx.ExpectBegin().WillReturnError(mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: failure getting user by email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: user already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUser, nil)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("error: failure creating user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, nil)

		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(repository.User{}, mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: transaction commit failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockLogger)

		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, nil)

		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(mockUser, nil)

		mockPgx.ExpectCommit().WillReturnError(mockError)

		res, err := service.Register(ctx, registerReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: user registered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQuerier := mock.NewMockQuerier(ctrl)
		mockPgx, _ := pgxmock.NewPool()
		mockLogger := log.NewMockInterface(ctrl)
		service := New(mockPgx, mockQuerier, mockLogger)

		mockPgx.ExpectBegin()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, nil)

		mockQuerier.EXPECT().
			CreateUser(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ repository.DBTX, arg repository.CreateUserParams) (repository.User, error) {
				assert.Equal(t, "1", arg.Level)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(arg.Password.String), []byte("password123")))

				return mockUser, nil
			})

		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback() // For the deferred rollback function

		res, err := service.Register(ctx, registerReq)

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, mockID.String(), res.ID)
		assert.Equal(t, "test@gmail.com", res.Email)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockQuerier := mock.NewMockQuerier(ctrl)
	mockPgx, _ := pgxmock.NewPool()
	mockLogger := log.NewMockInterface(ctrl)
	mockError := errors.New("error")

	service := New(mockPgx, mockQuerier, mockLogger)

	loginReq := dto.UserLoginRequest{
		Email:    "test@gmail.com",
		Password: "password123",
	}

	mockID := uuid.New()
	mockUser := func(password string) repository.User {
		return repository.User{
			ID:         pgtype.UUID{Bytes: mockID, Valid: true},
			Email:      "test@gmail.com",
			Password:   pgtype.Text{String: password, Valid: true},
			Level:      "1",
			FullName:   pgtype.Text{String: "Test User", Valid: true},
			IsVerified: pgtype.Bool{Bool: false, Valid: true},
			CreatedAt:  pgtype.Timestamp{Time: time.Now(), Valid: true},
			UpdatedAt:  pgtype.Timestamp{Time: time.Now(), Valid: true},
			DeletedAt:  pgtype.Timestamp{Valid: false},
		}
	}

	t.Run("error: transaction begin failure", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin().WillReturnError(mockError)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: failure getting user by email", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, mockError)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("error: user not found", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(repository.User{}, nil)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("error: invalid password", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUser("hashedpassword"), nil)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})

	t.Run("error: transaction commit failure", func(t *testing.T) {
		mockLogger.EXPECT().Error(gomock.Any(), gomock.Any())

		mockPgx.ExpectBegin()
		mockPgx.ExpectRollback()

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		mockUserWithValidPassword := mockUser(string(hashedPassword))

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUserWithValidPassword, nil)

		mockQuerier.EXPECT().
			UpdateLastLogin(gomock.Any(), gomock.Any(), mockUserWithValidPassword.ID).
			Return(pgtype.UUID{Bytes: mockID, Valid: true}, nil)

		mockPgx.ExpectCommit().WillReturnError(mockError)

		res, err := service.Login(ctx, loginReq)

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("success: login", func(t *testing.T) {
		mockPgx, _ = pgxmock.NewPool()
		service = New(mockPgx, mockQuerier, mockLogger)

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		mockUserWithValidPassword := mockUser(string(hashedPassword))

		mockPgx.ExpectBegin()

		mockQuerier.EXPECT().
			GetUserByEmail(gomock.Any(), gomock.Any(), "test@gmail.com").
			Return(mockUserWithValidPassword, nil)

		mockQuerier.EXPECT().
			UpdateLastLogin(gomock.Any(), gomock.Any(), mockUserWithValidPassword.ID).
			Return(pgtype.UUID{Bytes: mockID, Valid: true}, nil)

		mockPgx.ExpectCommit()
		mockPgx.ExpectRollback()

		res, err := service.Login(ctx, loginReq)

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
	})
}
