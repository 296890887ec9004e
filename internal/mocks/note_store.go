package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dkarpov/notes-server/internal/model"
)

// NoteStore is a mock implementation of model.NoteStore.
type NoteStore struct {
	mock.Mock
}

func (m *NoteStore) Create(ctx context.Context, note model.Note) (model.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) GetByID(ctx context.Context, id, ownerID uuid.UUID) (model.Note, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) List(ctx context.Context, params model.ListNotesParams) ([]model.Note, int, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]model.Note), args.Int(1), args.Error(2)
}

func (m *NoteStore) Update(ctx context.Context, note model.Note) (model.Note, error) {
	args := m.Called(ctx, note)
	return args.Get(0).(model.Note), args.Error(1)
}

func (m *NoteStore) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}
