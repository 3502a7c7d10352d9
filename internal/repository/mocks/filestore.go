package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// FileStore is a mock of repository.FileStore.
type FileStore struct {
	mock.Mock
}

func (m *FileStore) Save(ctx context.Context, filename string, content io.Reader) (int64, error) {
	args := m.Called(ctx, filename, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FileStore) Delete(ctx context.Context, filename string) error {
	args := m.Called(ctx, filename)
	return args.Error(0)
}
