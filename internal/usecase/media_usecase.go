package usecase

import "context"

// UploadImageInput carries the raw image buffer from the multipart request.
type UploadImageInput struct {
	Data        []byte
	ContentType string
}

// UploadImageOutput returns where the stored image can be fetched.
type UploadImageOutput struct {
	ImageURL string `json:"imageUrl"`
}

// MediaUsecase stores uploaded images.
type MediaUsecase interface {
	UploadImage(ctx context.Context, input *UploadImageInput) (*UploadImageOutput, error)
}
