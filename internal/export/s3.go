package export

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/barber-frontdesk/internal/config"
)

// Uploader is the part of the S3 client the exporter needs.
type Uploader interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewS3Client builds a client from static credentials. A custom endpoint
// switches to path style addressing for S3 compatible stores.
func NewS3Client(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.ExportRegion,
	}
	if cfg.AWSAccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKey,
			cfg.AWSSecretKey,
			"",
		)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.ExportEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.ExportEndpoint)
			o.UsePathStyle = true
		}
	})
}

var _ Uploader = (*s3.Client)(nil)
