package services

import (
	"context"
	"io"

	"storefront-backend/internal/models"
	"storefront-backend/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// MockLanguageRepository is an in-package mock for testing
type MockLanguageRepository struct {
	mock.Mock
}

func (m *MockLanguageRepository) Create(ctx context.Context, language *models.Language) error {
	args := m.Called(ctx, language)
	return args.Error(0)
}

func (m *MockLanguageRepository) Update(ctx context.Context, language *models.Language) error {
	args := m.Called(ctx, language)
	return args.Error(0)
}

func (m *MockLanguageRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *MockLanguageRepository) FindByCode(ctx context.Context, code string) (*models.Language, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Language), args.Error(1)
}

func (m *MockLanguageRepository) FindDefault(ctx context.Context) (*models.Language, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Language), args.Error(1)
}

func (m *MockLanguageRepository) FindAll(ctx context.Context, includeInactive bool) ([]models.Language, error) {
	args := m.Called(ctx, includeInactive)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Language), args.Error(1)
}

func (m *MockLanguageRepository) CountActive(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLanguageRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLanguageRepository) ClearDefault(ctx context.Context, exceptCode string) error {
	args := m.Called(ctx, exceptCode)
	return args.Error(0)
}

func (m *MockLanguageRepository) RenameInTranslations(ctx context.Context, from, to string) error {
	args := m.Called(ctx, from, to)
	return args.Error(0)
}

// Transaction runs fn against the mock itself so expectations set on the
// mock apply inside the transaction too.
func (m *MockLanguageRepository) Transaction(ctx context.Context, fn func(repo repository.LanguageRepository) error) error {
	return fn(m)
}

// MockObjectStorage is an in-package mock for testing
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Bucket() string {
	return "products"
}

func (m *MockObjectStorage) PresignPut(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, body, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockObjectStorage) RemoveMany(ctx context.Context, keys []string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockObjectStorage) PublicURL(key string) string {
	return "http://cdn.test/products/" + key
}
