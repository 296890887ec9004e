package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dkarpov/notes-server/internal/model"
)

// PendingStore is a mock implementation of model.PendingStore.
type PendingStore struct {
	mock.Mock
}

func (m *PendingStore) Put(ctx context.Context, pending model.PendingRegistration) error {
	args := m.Called(ctx, pending)
	return args.Error(0)
}

func (m *PendingStore) Get(ctx context.Context, email string) (model.PendingRegistration, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.PendingRegistration), args.Error(1)
}

func (m *PendingStore) Delete(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
