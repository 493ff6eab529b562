package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ghosteone/manager-api/infrastructure/repository/mocks"
	"github.com/ghosteone/manager-api/internal/config"
	"github.com/ghosteone/manager-api/internal/domain"
	"golang.org/x/crypto/bcrypt"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{Secret: "segredo-de-teste"},
	}
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(nil, nil)

	var created *domain.User
	mockRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
		created = u
		u.ID = 7
		return u, nil
	})

	user, err := service.CreateUser(&domain.User{
		Name:  "Maria",
		Email: " Maria@Exemplo.com ",
	}, "SenhaF0rte!")

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "maria@exemplo.com", created.Email)
	assert.NotEmpty(t, created.OwnerID)
	assert.Equal(t, domain.RoleArtist, created.RoleID)
	assert.True(t, created.Active)

	// A senha nunca é guardada em claro.
	assert.NotEqual(t, "SenhaF0rte!", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("SenhaF0rte!")))
}

func TestCreateUser_EmailJaCadastrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByEmail("maria@exemplo.com").
		Return(&domain.User{ID: 7, Email: "maria@exemplo.com"}, nil)

	user, err := service.CreateUser(&domain.User{
		Name:  "Maria",
		Email: "maria@exemplo.com",
	}, "SenhaF0rte!")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestCreateUser_DadosObrigatorios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	user, err := service.CreateUser(&domain.User{Name: "Maria"}, "SenhaF0rte!")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrMissingRequiredData)
}

func TestCreateUser_SenhaFraca(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	user, err := service.CreateUser(&domain.User{
		Name:  "Maria",
		Email: "maria@exemplo.com",
	}, "fraca")

	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("SenhaF0rte!"), bcrypt.DefaultCost)
	mockRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(&domain.User{
		ID:           7,
		OwnerID:      "owner-abc",
		Email:        "maria@exemplo.com",
		PasswordHash: string(hash),
		RoleID:       domain.RoleArtist,
		Active:       true,
	}, nil)

	token, err := service.LoginUser("Maria@Exemplo.com", "SenhaF0rte!")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	// O token emitido carrega o escopo de workspace do artista.
	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "owner-abc", claims.OwnerID)
	assert.Equal(t, domain.RoleArtist, claims.UserRoleID)
}

func TestLoginUser_SenhaIncorreta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	hash, _ := bcrypt.GenerateFromPassword([]byte("SenhaF0rte!"), bcrypt.DefaultCost)
	mockRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(&domain.User{
		ID:           7,
		Email:        "maria@exemplo.com",
		PasswordHash: string(hash),
		Active:       true,
	}, nil)

	token, err := service.LoginUser("maria@exemplo.com", "outra-senha")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, IsCredentialsError(err))
}

func TestLoginUser_ContaDesativada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(&domain.User{
		ID:     7,
		Email:  "maria@exemplo.com",
		Active: false,
	}, nil)

	token, err := service.LoginUser("maria@exemplo.com", "SenhaF0rte!")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUser_UsuarioInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByEmail("ninguem@exemplo.com").Return(nil, nil)

	token, err := service.LoginUser("ninguem@exemplo.com", "SenhaF0rte!")

	assert.Empty(t, token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateToken_SegredoErrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)

	hash, _ := bcrypt.GenerateFromPassword([]byte("SenhaF0rte!"), bcrypt.DefaultCost)
	mockRepo.EXPECT().GetUserByEmail("maria@exemplo.com").Return(&domain.User{
		ID:           7,
		Email:        "maria@exemplo.com",
		PasswordHash: string(hash),
		Active:       true,
	}, nil)

	issuer := NewService(mockRepo, testConfig())
	token, err := issuer.LoginUser("maria@exemplo.com", "SenhaF0rte!")
	assert.NoError(t, err)

	verifier := NewService(mockRepo, &config.Config{Auth: config.Auth{Secret: "outro-segredo"}})
	claims, err := verifier.ValidateToken(token)

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestGetUserProfile_NaoExpoeHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	mockRepo.EXPECT().GetUserByID(7).Return(&domain.User{
		ID:           7,
		Email:        "maria@exemplo.com",
		PasswordHash: "$2a$10$hash",
	}, nil)

	user, err := service.GetUserProfile(7)

	assert.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}

func TestValidatePasswordStrength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewService(mocks.NewMockUserRepository(ctrl), testConfig())

	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"Senha completa", "SenhaF0rte!", true},
		{"Curta demais", "S3nh@", false},
		{"Sem maiúscula", "senhaf0rte!", false},
		{"Sem minúscula", "SENHAF0RTE!", false},
		{"Sem número", "SenhaForte!", false},
		{"Sem caractere especial", "SenhaF0rte", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
