package media

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/brianmuthui/portfolio-api/adapters/event"
	"github.com/brianmuthui/portfolio-api/internal/application/service"
	"github.com/brianmuthui/portfolio-api/pkg/logger"
)

// MaxCleanupAttempts bounds the retry loop for one blob. A blob that still
// cannot be destroyed after this many rounds is logged and dropped; an
// orphaned blob costs storage, not correctness.
const MaxCleanupAttempts = 5

type ProcessCleanupUseCase struct {
	uploader service.Uploader
	cleanup  CleanupPublisher
	logger   logger.Logger
}

func NewProcessCleanupUseCase(u service.Uploader, cleanup CleanupPublisher, log logger.Logger) *ProcessCleanupUseCase {
	return &ProcessCleanupUseCase{uploader: u, cleanup: cleanup, logger: log}
}

// Execute retries one queued delete intent. On failure it requeues the
// intent with an incremented attempt count until the cap is reached.
func (uc *ProcessCleanupUseCase) Execute(ctx context.Context, payload event.BlobCleanupPayload) error {
	err := uc.uploader.Delete(ctx, payload.PublicID)
	if err == nil {
		uc.logger.Info("Blob cleanup succeeded",
			zap.String("public_id", payload.PublicID),
			zap.Int("attempts", payload.Attempts))
		return nil
	}

	if payload.Attempts >= MaxCleanupAttempts {
		uc.logger.Error("Blob cleanup exhausted retries, dropping intent", err,
			zap.String("public_id", payload.PublicID),
			zap.Int("attempts", payload.Attempts))
		return nil
	}

	uc.logger.Warn("Blob cleanup failed, requeueing",
		zap.String("public_id", payload.PublicID),
		zap.Int("attempts", payload.Attempts),
		zap.Error(err))

	next := event.BlobCleanupPayload{
		URL:         payload.URL,
		PublicID:    payload.PublicID,
		Attempts:    payload.Attempts + 1,
		RequestedAt: time.Now().UTC(),
	}
	return uc.cleanup.PublishBlobCleanup(ctx, next)
}
