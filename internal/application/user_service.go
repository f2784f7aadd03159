package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
	repo "github.com/llOrtegall/backend-app-full-stack/internal/domain/repository"
	"github.com/llOrtegall/backend-app-full-stack/pkg/helpers"
	"github.com/llOrtegall/backend-app-full-stack/pkg/mailer"
)

// UserService orchestrates user registration: duplicate check, password
// hashing, factory construction and persistence, in that order.
type UserService struct {
	Repo      repo.UserRepository
	Encryptor PasswordEncryptor
	Pub       *helpers.RabbitPublisher
	Logger    *logrus.Logger
}

func NewUserService(r repo.UserRepository, enc PasswordEncryptor, pub *helpers.RabbitPublisher, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Encryptor: enc, Pub: pub, Logger: logger}
}

// RegisterUserInput is the already schema-validated registration payload.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates a new user account. The duplicate lookup uses the same
// normalization the factory applies so accounts cannot differ only by
// email case. The plaintext password is hashed before it ever reaches the
// factory or the repository.
func (s *UserService) Register(ctx context.Context, in RegisterUserInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil && !entity.IsKind(err, entity.KindUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, entity.NewUserAlreadyExists(email)
	}

	hashed, err := s.Encryptor.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := entity.NewUser(entity.NewUserInput{
		Name:     in.Name,
		Email:    email,
		Password: hashed,
	})
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.enqueueWelcomeEmail(ctx, u)
	return u, nil
}

// enqueueWelcomeEmail publishes a welcome email job. Best effort: a queue
// failure is logged and never fails the registration.
func (s *UserService) enqueueWelcomeEmail(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:      u.Email,
		Subject: "Welcome to the inventory platform",
		Text:    fmt.Sprintf("Hi %s, your account was created successfully.", u.Name),
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("failed to enqueue welcome email")
	}
}
