package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/brianmuthui/portfolio-api/internal/application/service"
	"github.com/brianmuthui/portfolio-api/pkg/apperror"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

// Upload folders and their content-type policies. The check runs before
// any blob-store call: a rejected file never leaves the process.
const (
	FolderProfilePictures = "profile-pictures"
	FolderProjectImages   = "project-images"
	FolderResumes         = "resumes"
)

func allowedContentType(folder, contentType string) bool {
	switch folder {
	case FolderResumes:
		return strings.Contains(contentType, "pdf")
	case FolderProfilePictures, FolderProjectImages:
		return strings.HasPrefix(contentType, "image/")
	default:
		return false
	}
}

type UploadAssetUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadAssetUseCase(u service.Uploader, log logger.Logger) *UploadAssetUseCase {
	return &UploadAssetUseCase{uploader: u, logger: log}
}

type UploadAssetInput struct {
	OwnerID     uuid.UUID
	File        io.Reader
	Filename    string
	ContentType string
	Folder      string
}

type UploadAssetOutput struct {
	// URL is durable but dangling until the caller attaches it to a record
	// field and saves that record.
	URL string
}

func (uc *UploadAssetUseCase) Execute(ctx context.Context, input UploadAssetInput) (*UploadAssetOutput, error) {
	switch input.Folder {
	case FolderProfilePictures, FolderProjectImages, FolderResumes:
	default:
		return nil, apperror.NewInvalidInput(fmt.Sprintf("unknown upload folder '%s'", input.Folder), nil)
	}

	if !allowedContentType(input.Folder, input.ContentType) {
		return nil, apperror.NewInvalidInput(
			fmt.Sprintf("file type '%s' is not allowed in folder '%s'", input.ContentType, input.Folder), nil)
	}

	folder := fmt.Sprintf("portfolio/%s", input.Folder)
	publicID := uuid.New().String()

	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload asset", err)
	}

	return &UploadAssetOutput{URL: url}, nil
}
