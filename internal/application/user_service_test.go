package application_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llOrtegall/backend-app-full-stack/internal/application"
	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
)

// fakeUserRepo is an in-memory UserRepository keyed by email.
type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[string]entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.users[u.Email] = *u
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			return entity.ReconstituteUser(u), nil
		}
	}
	return nil, entity.NewUserNotFound(id)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[email]; ok {
		return entity.ReconstituteUser(u), nil
	}
	return nil, entity.NewUserNotFound(email)
}

func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	return errors.New("not implemented")
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	return errors.New("not implemented")
}

// fakeEncryptor is a deterministic PasswordEncryptor stub.
type fakeEncryptor struct{}

func (fakeEncryptor) Hash(plain string) (string, error) { return "hashed::" + plain, nil }
func (fakeEncryptor) Compare(plain, hash string) bool   { return hash == "hashed::"+plain }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newUserService(repo *fakeUserRepo) *application.UserService {
	return application.NewUserService(repo, fakeEncryptor{}, nil, quietLogger())
}

func TestRegister_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	u, err := svc.Register(context.Background(), application.RegisterUserInput{
		Name:     "Ana",
		Email:    "ANA@Example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", u.Email)
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEmpty(t, u.ID)

	stored, ok := repo.users["ana@example.com"]
	require.True(t, ok, "user should be persisted under the normalized email")
	assert.NotEqual(t, "secret", stored.Password, "plaintext must never be stored")
	assert.True(t, fakeEncryptor{}.Compare("secret", stored.Password))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, application.RegisterUserInput{Name: "Ana", Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, application.RegisterUserInput{Name: "Ana", Email: "ana@example.com", Password: "secret"})
	require.Error(t, err)
	assert.Equal(t, entity.KindUserAlreadyExists, entity.KindOf(err))
	assert.Len(t, repo.users, 1)
}

func TestRegister_DuplicateEmailIsCaseInsensitive(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, application.RegisterUserInput{Name: "Ana", Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, application.RegisterUserInput{Name: "Ana", Email: "ANA@EXAMPLE.COM", Password: "secret"})
	require.Error(t, err)
	assert.Equal(t, entity.KindUserAlreadyExists, entity.KindOf(err))
}

func TestRegister_InvalidDataPropagates(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), application.RegisterUserInput{Name: "", Email: "a@b.com", Password: "secret"})
	require.Error(t, err)
	assert.Equal(t, entity.KindInvalidUserData, entity.KindOf(err))
	assert.Empty(t, repo.users)
}

func TestRegister_PersistenceFailureIsInfra(t *testing.T) {
	repo := newFakeUserRepo()
	repo.createErr = errors.New("connection reset")
	svc := newUserService(repo)

	_, err := svc.Register(context.Background(), application.RegisterUserInput{Name: "Ana", Email: "a@b.com", Password: "secret"})
	require.Error(t, err)
	assert.Equal(t, entity.ErrorKind(""), entity.KindOf(err), "infrastructure failures must not masquerade as domain errors")
	assert.True(t, strings.Contains(err.Error(), "create user"))
}
