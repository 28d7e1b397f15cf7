package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/yukikurage/notes-api/internal/repository"
)

type AuthServiceTestSuite struct {
	suite.Suite
	service *AuthService
	ctx     context.Context
}

func (s *AuthServiceTestSuite) SetupTest() {
	db := setupTestDB(s.T())
	s.service = NewAuthService(repository.NewUserRepository(db))
	s.ctx = context.Background()
}

func (s *AuthServiceTestSuite) TestSignupAndLogin() {
	user, err := s.service.Signup(s.ctx, SignupInput{
		Email:    "  Alice@Example.com ",
		Name:     " Alice ",
		Password: "password123",
	})
	s.Require().NoError(err)
	s.Equal("alice@example.com", user.Email)
	s.Equal("Alice", user.Name)
	s.NotEqual("password123", user.PasswordHash)

	loggedIn, err := s.service.Login(s.ctx, LoginInput{Email: "ALICE@example.com", Password: "password123"})
	s.Require().NoError(err)
	s.Equal(user.ID, loggedIn.ID)
}

func (s *AuthServiceTestSuite) TestSignup_Validation() {
	_, err := s.service.Signup(s.ctx, SignupInput{Email: "nope", Password: "password123"})
	s.ErrorIs(err, ErrInvalidEmail)

	_, err = s.service.Signup(s.ctx, SignupInput{Email: "bob@example.com", Password: "short"})
	s.ErrorIs(err, ErrPasswordTooShort)
}

func (s *AuthServiceTestSuite) TestSignup_DuplicateEmail() {
	_, err := s.service.Signup(s.ctx, SignupInput{Email: "bob@example.com", Password: "password123"})
	s.Require().NoError(err)

	_, err = s.service.Signup(s.ctx, SignupInput{Email: "BOB@example.com", Password: "password456"})
	s.ErrorIs(err, ErrEmailTaken)
}

func (s *AuthServiceTestSuite) TestLogin_InvalidCredentials() {
	_, err := s.service.Signup(s.ctx, SignupInput{Email: "carol@example.com", Password: "password123"})
	s.Require().NoError(err)

	_, err = s.service.Login(s.ctx, LoginInput{Email: "carol@example.com", Password: "wrongpassword"})
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.service.Login(s.ctx, LoginInput{Email: "dave@example.com", Password: "password123"})
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *AuthServiceTestSuite) TestGetUser_NotFound() {
	_, err := s.service.GetUser(s.ctx, 42)
	s.ErrorIs(err, ErrUserNotFound)
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
