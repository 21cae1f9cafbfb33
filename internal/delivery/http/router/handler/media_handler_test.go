package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domainerrors "swipedeck/internal/domain/errors"
	"swipedeck/internal/usecase"
)

func multipartImageRequest(t *testing.T, field string, payload []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="photo.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestMediaHandler_UploadImage_Success(t *testing.T) {
	e := newTestServer(t)
	uc := &mockMediaUsecase{}
	handler := NewMediaHandler(uc, discardLogger())
	e.POST("/upload", handler.UploadImage)

	uc.On("UploadImage", mock.Anything, mock.MatchedBy(func(input *usecase.UploadImageInput) bool {
		return bytes.Equal(input.Data, []byte("jpeg-bytes")) && input.ContentType == "image/jpeg"
	})).Return(&usecase.UploadImageOutput{ImageURL: "http://cdn.example.com/images/abc"}, nil)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartImageRequest(t, "image", []byte("jpeg-bytes")))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"imageUrl":"http://cdn.example.com/images/abc"`)
	uc.AssertExpectations(t)
}

func TestMediaHandler_UploadImage_MissingFile(t *testing.T) {
	e := newTestServer(t)
	uc := &mockMediaUsecase{}
	handler := NewMediaHandler(uc, discardLogger())
	e.POST("/upload", handler.UploadImage)

	// Wrong field name means no "image" part arrives.
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartImageRequest(t, "file", []byte("jpeg-bytes")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No file uploaded")
}

func TestMediaHandler_UploadImage_StoreFailure(t *testing.T) {
	e := newTestServer(t)
	uc := &mockMediaUsecase{}
	handler := NewMediaHandler(uc, discardLogger())
	e.POST("/upload", handler.UploadImage)

	uc.On("UploadImage", mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrUploadFailed.WrapMessage("bucket write failed"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, multipartImageRequest(t, "image", []byte("jpeg-bytes")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Image upload failed")
	assert.NotContains(t, rec.Body.String(), "bucket write failed")
}
