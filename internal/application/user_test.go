package application

import (
	"testing"

	"github.com/dormhub/dormhub-go/internal/domain/user"
	"github.com/dormhub/dormhub-go/pkg/apperr"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func setupUserService(t *testing.T) (*UserService, *serviceMocks) {
	m := newServiceMocks(t)
	return NewUserService(m.repos), m
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, m := setupUserService(t)

	m.user.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NotEqual(t, "secret123", u.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")))
		u.UID = 2
		return nil
	})

	u, err := svc.Register(user.RegisterDTO{
		Username: "alice",
		Password: "secret123",
		Email:    ptrString("alice@example.com"),
	})
	assert.NoError(t, err)
	assert.Equal(t, string(user.UserRoleUser), u.Role)
}

func TestLogin_Success(t *testing.T) {
	svc, m := setupUserService(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	m.user.EXPECT().GetUserByUsername("alice").Return(user.User{
		UID:      2,
		Username: "alice",
		Password: string(hashed),
		Role:     string(user.UserRoleUser),
		Status:   string(user.UserStatusActive),
	}, nil)

	token, u, err := svc.Login(user.LoginDTO{Username: "alice", Password: "secret123"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, uint(2), u.UID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, m := setupUserService(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	m.user.EXPECT().GetUserByUsername("alice").Return(user.User{
		UID:      2,
		Username: "alice",
		Password: string(hashed),
		Status:   string(user.UserStatusActive),
	}, nil)

	_, _, err := svc.Login(user.LoginDTO{Username: "alice", Password: "nope"})
	assert.True(t, apperr.IsKind(err, apperr.KindPermission))
}

func TestUpdateProfile_RehashesPassword(t *testing.T) {
	svc, m := setupUserService(t)

	m.user.EXPECT().GetUserByID(uint(2)).Return(user.User{
		UID:      2,
		Username: "alice",
		Password: "old-hash",
	}, nil)
	m.user.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(u *user.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("newsecret")))
		assert.Equal(t, "alice@example.com", *u.Email)
		return nil
	})

	u, err := svc.UpdateProfile(2, user.UpdateProfileDTO{
		Email:    ptrString("alice@example.com"),
		Password: ptrString("newsecret"),
	})
	assert.NoError(t, err)
	assert.Equal(t, uint(2), u.UID)
}

func TestLogin_DisabledAccount(t *testing.T) {
	svc, m := setupUserService(t)

	m.user.EXPECT().GetUserByUsername("alice").Return(user.User{
		UID:    2,
		Status: string(user.UserStatusDisabled),
	}, nil)

	_, _, err := svc.Login(user.LoginDTO{Username: "alice", Password: "secret123"})
	assert.True(t, apperr.IsKind(err, apperr.KindPermission))
}
