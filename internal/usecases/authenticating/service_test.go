package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/collections-manager-api/infrastructure/repository"
	"github.com/vfg2006/collections-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/collections-manager-api/internal/config"
	"github.com/vfg2006/collections-manager-api/internal/domain"
	"github.com/vfg2006/collections-manager-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(userRepo, config.Auth{Secret: "segredo-de-teste", TokenTTLHours: 8})
	return service, userRepo
}

func activeUser(t *testing.T, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           7,
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@empresa.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       2,
	}
}

func authCode(t *testing.T, err error) string {
	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	return authErr.Code
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)
	user := activeUser(t, "Senha123")

	userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(user, nil)

	token, err := service.LoginUser(" Ana@Empresa.com ", "Senha123")

	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, 2, claims.UserRoleID)
	assert.Equal(t, "ana@empresa.com", claims.UserEmail)
}

func TestService_LoginUser_Errors(t *testing.T) {
	disabled := &domain.User{ID: 3, Email: "inativo@empresa.com", Active: false}

	tests := []struct {
		name         string
		email        string
		password     string
		setup        func(t *testing.T, userRepo *mocks.MockUserRepository)
		expectedErr  error
		expectedCode string
	}{
		{
			name:         "Campos obrigatórios",
			email:        "",
			password:     "x",
			setup:        func(t *testing.T, userRepo *mocks.MockUserRepository) {},
			expectedErr:  ErrMissingRequiredData,
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Usuário inexistente",
			email:    "nao@existe.com",
			password: "Senha123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("nao@existe.com").Return(nil, nil)
			},
			expectedErr:  ErrUserNotFound,
			expectedCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "Usuário desativado",
			email:    "inativo@empresa.com",
			password: "Senha123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("inativo@empresa.com").Return(disabled, nil)
			},
			expectedErr:  ErrUserDisabled,
			expectedCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "ana@empresa.com",
			password: "Errada123",
			setup: func(t *testing.T, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t, "Senha123"), nil)
			},
			expectedErr:  ErrInvalidCredentials,
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, userRepo := newTestService(ctrl)
			tt.setup(t, userRepo)

			token, err := service.LoginUser(tt.email, tt.password)

			require.Error(t, err)
			assert.Empty(t, token)
			assert.ErrorIs(t, err, tt.expectedErr)
			assert.Equal(t, tt.expectedCode, authCode(t, err))
		})
	}
}

func TestService_ValidateToken_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)
	issuedAt := time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issuedAt }

	token, err := service.generateJWT(activeUser(t, "Senha123"))
	require.NoError(t, err)

	service.now = func() time.Time { return issuedAt.Add(9 * time.Hour) }

	claims, err := service.ValidateToken(token)

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.Equal(t, apiErrors.ErrExpiredToken, authCode(t, err))
}

func TestService_ValidateToken_WrongSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl)
	other := NewService(mocks.NewMockUserRepository(ctrl), config.Auth{Secret: "outro-segredo", TokenTTLHours: 8})

	token, err := other.generateJWT(activeUser(t, "Senha123"))
	require.NoError(t, err)

	_, err = service.ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)

	userRepo.EXPECT().GetUserByEmail("novo@empresa.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha123")))
		assert.Equal(t, defaultRoleID, user.RoleID)
		assert.False(t, user.Active)
		user.ID = 10
		return user, nil
	})

	created, err := service.CreateUser(&domain.User{
		Name:         "Novo",
		Email:        "Novo@Empresa.com",
		PasswordHash: "Senha123",
	})

	require.NoError(t, err)
	assert.Equal(t, 10, created.ID)
	assert.Empty(t, created.PasswordHash)
}

func TestService_CreateUser_Duplicated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, userRepo := newTestService(ctrl)

	userRepo.EXPECT().GetUserByEmail("novo@empresa.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).Return(nil, repository.ErrDuplicatedUser)

	_, err := service.CreateUser(&domain.User{Name: "Novo", Email: "novo@empresa.com", PasswordHash: "Senha123"})

	assert.ErrorIs(t, err, ErrUserAlreadyExists)
	assert.Equal(t, apiErrors.ErrUserAlreadyExists, authCode(t, err))
}

func TestValidatePasswordStrength(t *testing.T) {
	assert.NoError(t, ValidatePasswordStrength("Senha123"))
	assert.Error(t, ValidatePasswordStrength("Se1"))
	assert.Error(t, ValidatePasswordStrength("senha1234"))
	assert.Error(t, ValidatePasswordStrength("SENHA1234"))
	assert.Error(t, ValidatePasswordStrength("SenhaForte"))
}
