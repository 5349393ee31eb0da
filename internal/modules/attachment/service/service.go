package service

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/urbancare/urbancare-api/pkg/apperror"
	"github.com/urbancare/urbancare-api/pkg/storage"
)

// maxUploadSize caps issue photos at 10 MB.
const maxUploadSize = 10 << 20

type AttachmentService interface {
	UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type attachmentService struct {
	storage storage.ImageStorage
	folder  string
}

func NewAttachmentService(imageStorage storage.ImageStorage, folder string) AttachmentService {
	return &attachmentService{
		storage: imageStorage,
		folder:  folder,
	}
}

func (s *attachmentService) UploadImage(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > maxUploadSize {
		return "", fmt.Errorf("%w: file exceeds the 10MB limit", apperror.ErrValidation)
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	url, err := s.storage.UploadImage(ctx, src, s.folder, file.Filename)
	if err != nil {
		return "", err
	}

	return url, nil
}
