package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-frontdesk/internal/domain/report"
	"github.com/BruksfildServices01/barber-frontdesk/internal/dto"
)

// ClosureSource computes the financial closure of a year.
type ClosureSource interface {
	Execute(ctx context.Context, year int) (*dto.FinancialClosureDTO, error)
}

// Closure is the exported document: the closure of the month's year,
// tagged with the month that just ended.
type Closure struct {
	Month      string                   `json:"month"`
	MonthLabel string                   `json:"month_label"`
	Closure    *dto.FinancialClosureDTO `json:"closure"`
}

type ClosureExporter struct {
	source   ClosureSource
	uploader Uploader
	bucket   string
	log      *zap.Logger
}

func NewClosureExporter(
	source ClosureSource,
	uploader Uploader,
	bucket string,
	log *zap.Logger,
) *ClosureExporter {
	return &ClosureExporter{
		source:   source,
		uploader: uploader,
		bucket:   bucket,
		log:      log,
	}
}

// Key is the object key for the closure of the month containing t.
func Key(t time.Time) string {
	return fmt.Sprintf("closures/%04d/%s.json", t.Year(), t.Format("2006-01"))
}

// Export uploads the closure of the month before now and returns its key.
func (e *ClosureExporter) Export(ctx context.Context, now time.Time) (string, error) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prev := first.AddDate(0, -1, 0)

	closure, err := e.source.Execute(ctx, prev.Year())
	if err != nil {
		return "", fmt.Errorf("build closure: %w", err)
	}

	body, err := json.Marshal(Closure{
		Month:      prev.Format("2006-01"),
		MonthLabel: domain.MonthLabel(prev.Year(), prev.Month()),
		Closure:    closure,
	})
	if err != nil {
		return "", fmt.Errorf("encode closure: %w", err)
	}

	key := Key(prev)
	if _, err := e.uploader.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		return "", fmt.Errorf("upload closure %s: %w", key, err)
	}

	e.log.Info("financial closure exported",
		zap.String("bucket", e.bucket),
		zap.String("key", key),
	)
	return key, nil
}
