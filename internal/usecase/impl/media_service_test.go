package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/errors"
	"swipedeck/internal/usecase"
)

func createTestMediaService(t *testing.T) (usecase.MediaUsecase, *mockImageStorage) {
	t.Helper()

	images := &mockImageStorage{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMediaService(MediaServiceParams{
		Images: images,
		Logger: logger,
	})

	t.Cleanup(func() { images.AssertExpectations(t) })

	return service, images
}

func TestMediaService_UploadImage_Success(t *testing.T) {
	service, images := createTestMediaService(t)
	ctx := context.Background()

	images.On("Upload", mock.Anything, []byte("jpeg-bytes"), "image/jpeg").
		Return("http://cdn.example.com/images/abc", nil)

	output, err := service.UploadImage(ctx, &usecase.UploadImageInput{
		Data:        []byte("jpeg-bytes"),
		ContentType: "image/jpeg",
	})
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.example.com/images/abc", output.ImageURL)
}

func TestMediaService_UploadImage_EmptyBuffer(t *testing.T) {
	service, _ := createTestMediaService(t)
	ctx := context.Background()

	_, err := service.UploadImage(ctx, &usecase.UploadImageInput{ContentType: "image/jpeg"})
	assert.True(t, errors.Is(err, domainerrors.ErrNoFileUploaded))
}

func TestMediaService_UploadImage_StoreFailure(t *testing.T) {
	service, images := createTestMediaService(t)
	ctx := context.Background()

	images.On("Upload", mock.Anything, mock.Anything, mock.Anything).
		Return("", domainerrors.ErrUploadFailed.WrapMessage("bucket write failed"))

	_, err := service.UploadImage(ctx, &usecase.UploadImageInput{Data: []byte("x")})
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}
