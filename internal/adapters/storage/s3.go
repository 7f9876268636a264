// internal/adapters/storage/s3.go
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
)

// Uploader is the subset of the s3 manager used to write archives
type Uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Config holds S3 configuration
type S3Config struct {
	Region          string
	Bucket          string
	Prefix          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // For MinIO/LocalStack
	UsePathStyle    bool   // For MinIO/LocalStack
}

// OfferArchive writes validated offer snapshots to S3 as JSON, with a
// spreadsheet rendering next to each snapshot
type OfferArchive struct {
	uploader Uploader
	bucket   string
	prefix   string
	logger   *slog.Logger
}

var _ ports.OfferArchive = (*OfferArchive)(nil)

// NewS3OfferArchive creates an archive backed by an S3 bucket
func NewS3OfferArchive(ctx context.Context, cfg *S3Config, logger *slog.Logger) (*OfferArchive, error) {
	awsCfg, err := buildAWSConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.EndpointResolver = s3.EndpointResolverFromURL(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	if err := ensureBucket(ctx, client, cfg.Bucket, cfg.Region, logger); err != nil {
		return nil, fmt.Errorf("failed to ensure bucket: %w", err)
	}

	logger.Info("S3 offer archive initialized",
		slog.String("bucket", cfg.Bucket),
		slog.String("prefix", cfg.Prefix),
		slog.String("region", cfg.Region))

	return NewOfferArchive(manager.NewUploader(client), cfg.Bucket, cfg.Prefix, logger), nil
}

// NewOfferArchive creates an archive over an existing uploader
func NewOfferArchive(uploader Uploader, bucket, prefix string, logger *slog.Logger) *OfferArchive {
	return &OfferArchive{
		uploader: uploader,
		bucket:   bucket,
		prefix:   prefix,
		logger:   logger.With(slog.String("storage", "s3")),
	}
}

// buildAWSConfig builds AWS configuration
func buildAWSConfig(ctx context.Context, cfg *S3Config) (aws.Config, error) {
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		return config.LoadDefaultConfig(ctx,
			config.WithRegion(cfg.Region),
			config.WithCredentialsProvider(
				credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretAccessKey,
					"",
				),
			),
		)
	}

	return config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
}

// ensureBucket creates the bucket when it is missing
func ensureBucket(ctx context.Context, client *s3.Client, bucket, region string, logger *slog.Logger) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})
	if err == nil {
		return nil
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(bucket)}
	// us-east-1 rejects an explicit location constraint
	if region != "" && region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		}
	}

	if _, createErr := client.CreateBucket(ctx, input); createErr != nil {
		return fmt.Errorf("bucket %s does not exist and could not be created: %w", bucket, createErr)
	}

	logger.Info("created S3 bucket", slog.String("bucket", bucket))
	return nil
}

// Key returns the object key for an offer snapshot
func (a *OfferArchive) Key(snapshot *domain.OfferSnapshot) string {
	name := snapshot.Offer.ID.String()
	if snapshot.Offer.Reference != nil && *snapshot.Offer.Reference != "" {
		name = *snapshot.Offer.Reference
	}
	return path.Join(a.prefix, name+".json")
}

// WorkbookKey returns the object key of the spreadsheet stored next to the
// snapshot.
func (a *OfferArchive) WorkbookKey(snapshot *domain.OfferSnapshot) string {
	return strings.TrimSuffix(a.Key(snapshot), ".json") + ".xlsx"
}

// StoreOffer uploads the snapshot and returns its object key
func (a *OfferArchive) StoreOffer(ctx context.Context, snapshot *domain.OfferSnapshot) (string, error) {
	if snapshot == nil {
		return "", fmt.Errorf("offer snapshot is required")
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode offer snapshot: %w", err)
	}

	workbook, err := OfferWorkbook(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to render offer workbook: %w", err)
	}

	key := a.Key(snapshot)
	if err := a.upload(ctx, snapshot, key, "application/json", body); err != nil {
		return "", fmt.Errorf("failed to upload offer snapshot: %w", err)
	}
	if err := a.upload(ctx, snapshot, a.WorkbookKey(snapshot), workbookContentType, workbook); err != nil {
		return "", fmt.Errorf("failed to upload offer workbook: %w", err)
	}

	return key, nil
}

func (a *OfferArchive) upload(ctx context.Context, snapshot *domain.OfferSnapshot, key, contentType string, body []byte) error {
	result, err := a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"buyback-offer-id": snapshot.Offer.ID.String(),
			"archived-at":      snapshot.ArchivedAt.UTC().Format(time.RFC3339),
			"items":            fmt.Sprintf("%d", len(snapshot.Items)),
		},
	})
	if err != nil {
		return err
	}

	a.logger.InfoContext(ctx, "offer archive uploaded",
		slog.String("key", key),
		slog.String("location", result.Location),
		slog.Int("size", len(body)))
	return nil
}
