package application

import (
	"time"

	"github.com/dormhub/dormhub-go/internal/config"
	"github.com/dormhub/dormhub-go/internal/domain/user"
	"github.com/dormhub/dormhub-go/internal/repository"
	"github.com/dormhub/dormhub-go/pkg/apperr"
	"github.com/dormhub/dormhub-go/pkg/types"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

func (s *UserService) Register(input user.RegisterDTO) (*user.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := user.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
		FullName: input.FullName,
		Role:     string(user.UserRoleUser),
		Status:   string(user.UserStatusActive),
	}
	if err := s.Repos.User.CreateUser(&u); err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	return &u, nil
}

// Login checks credentials and issues a signed token. Wrong username and
// wrong password produce the same error on purpose.
func (s *UserService) Login(input user.LoginDTO) (string, *user.User, error) {
	u, err := s.Repos.User.GetUserByUsername(input.Username)
	if err != nil {
		return "", nil, apperr.Permissionf("invalid username or password")
	}
	if u.Status != string(user.UserStatusActive) {
		return "", nil, apperr.Permissionf("account is disabled")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(input.Password)); err != nil {
		return "", nil, apperr.Permissionf("invalid username or password")
	}

	token, err := s.issueToken(&u)
	if err != nil {
		return "", nil, err
	}
	return token, &u, nil
}

func (s *UserService) GetUser(id uint) (user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	return u, apperr.FromDB(err, "user")
}

// UpdateProfile lets a user change their own contact details or password.
func (s *UserService) UpdateProfile(uid uint, input user.UpdateProfileDTO) (*user.User, error) {
	u, err := s.Repos.User.GetUserByID(uid)
	if err != nil {
		return nil, apperr.FromDB(err, "user")
	}

	if input.Email != nil {
		u.Email = input.Email
	}
	if input.FullName != nil {
		u.FullName = input.FullName
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hashed)
	}

	if err := s.Repos.User.UpdateUser(&u); err != nil {
		return nil, apperr.FromDB(err, "user")
	}
	return &u, nil
}

func (s *UserService) issueToken(u *user.User) (string, error) {
	now := time.Now()
	claims := types.Claims{
		UserID:   u.UID,
		Username: u.Username,
		IsAdmin:  u.Role == string(user.UserRoleSysAdmin) || u.Role == string(user.UserRoleAdmin),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    config.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.JwtSecret))
}
