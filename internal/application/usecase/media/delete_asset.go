package media

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/brianmuthui/portfolio-api/adapters/event"
	"github.com/brianmuthui/portfolio-api/internal/application/service"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

// CleanupPublisher records delete intents that could not be carried out so
// the worker can retry them later.
type CleanupPublisher interface {
	PublishBlobCleanup(ctx context.Context, payload event.BlobCleanupPayload) error
}

type DeleteAssetUseCase struct {
	uploader service.Uploader
	cleanup  CleanupPublisher
	logger   logger.Logger
}

func NewDeleteAssetUseCase(u service.Uploader, cleanup CleanupPublisher, log logger.Logger) *DeleteAssetUseCase {
	return &DeleteAssetUseCase{uploader: u, cleanup: cleanup, logger: log}
}

type DeleteAssetInput struct {
	URL string
}

// Execute is best-effort by contract: the caller clears its URL field no
// matter what happens here. Foreign URLs are left untouched; a failed
// destroy is logged and enqueued for the cleanup worker instead of being
// surfaced.
func (uc *DeleteAssetUseCase) Execute(ctx context.Context, input DeleteAssetInput) error {
	if !uc.uploader.Owns(input.URL) {
		return nil
	}

	publicID, ok := uc.uploader.PublicID(input.URL)
	if !ok {
		uc.logger.Warn("Could not derive public id from asset URL", zap.String("url", input.URL))
		return nil
	}

	if err := uc.uploader.Delete(ctx, publicID); err != nil {
		uc.logger.Error("Blob delete failed, queueing cleanup intent", err, zap.String("public_id", publicID))

		payload := event.BlobCleanupPayload{
			URL:         input.URL,
			PublicID:    publicID,
			Attempts:    1,
			RequestedAt: time.Now().UTC(),
		}
		if pubErr := uc.cleanup.PublishBlobCleanup(ctx, payload); pubErr != nil {
			uc.logger.Error("Failed to queue blob cleanup intent", pubErr, zap.String("public_id", publicID))
		}
	}
	return nil
}
