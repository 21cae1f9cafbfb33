package impl

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	deliverycontext "swipedeck/internal/delivery/context"
	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/domain/service"
	"swipedeck/internal/errors"
	"swipedeck/internal/usecase"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	images service.ImageStorage
	logger *slog.Logger
}

// MediaServiceParams holds dependencies for mediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Images service.ImageStorage
	Logger *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		images: params.Images,
		logger: params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage stores the buffer and returns the public URL.
func (srv *mediaService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	if input == nil || len(input.Data) == 0 {
		return nil, domainerrors.ErrNoFileUploaded.WrapMessage("empty upload body")
	}

	url, err := srv.images.Upload(ctx, input.Data, input.ContentType)
	if err != nil {
		srv.log(ctx).Error("Image upload failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upload image")
	}

	srv.log(ctx).Debug("Image uploaded", slog.String("url", url))

	return &usecase.UploadImageOutput{ImageURL: url}, nil
}
