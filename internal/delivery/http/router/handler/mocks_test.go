package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"swipedeck/internal/domain/entity"
	"swipedeck/internal/usecase"
)

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *mockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output := args.Get(0); output != nil {
		return output.(*usecase.LoginOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockSwipeUsecase struct {
	mock.Mock
}

func (m *mockSwipeUsecase) RecordSwipe(ctx context.Context, input *usecase.RecordSwipeInput) (*entity.SwipeRecord, error) {
	args := m.Called(ctx, input)
	if record := args.Get(0); record != nil {
		return record.(*entity.SwipeRecord), args.Error(1)
	}

	return nil, args.Error(1)
}

type mockMediaUsecase struct {
	mock.Mock
}

func (m *mockMediaUsecase) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	args := m.Called(ctx, input)
	if output := args.Get(0); output != nil {
		return output.(*usecase.UploadImageOutput), args.Error(1)
	}

	return nil, args.Error(1)
}
