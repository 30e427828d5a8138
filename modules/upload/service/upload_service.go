package service

import (
	"context"
	"fmt"
	appConfig "honeydew-api/core/config"
	"honeydew-api/core/errors"
	"honeydew-api/core/logger"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Uploader is the slice of the S3 client the service needs.
type S3Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// UploadResult points at the stored object.
type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// UploadService stores user images in S3
type UploadService struct {
	client    S3Uploader
	bucket    string
	publicURL string
}

// UploadServiceInterface defines the service contract
type UploadServiceInterface interface {
	UploadImage(ctx context.Context, header *multipart.FileHeader) (*UploadResult, *errors.AppError)
}

func NewUploadService(client S3Uploader, cfg appConfig.S3Config) UploadServiceInterface {
	return &UploadService{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}
}

// NewS3Client builds the real S3 client from the ambient AWS credentials.
func NewS3Client(ctx context.Context, cfg appConfig.S3Config) (*s3.Client, error) {
	awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
	if err != nil {
		logger.Error("UploadService:NewS3Client", err)
		return nil, err
	}
	return s3.NewFromConfig(awsCfg), nil
}

// UploadImage stores one image under uploads/<unix>-<name>.
func (s *UploadService) UploadImage(ctx context.Context, header *multipart.FileHeader) (*UploadResult, *errors.AppError) {
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Only image uploads are allowed", nil)
	}

	file, err := header.Open()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Could not read uploaded file", err)
	}
	defer file.Close()

	key := fmt.Sprintf("uploads/%d-%s", time.Now().Unix(), sanitizeFilename(header.Filename))

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(header.Size),
	}); err != nil {
		logger.Error("UploadService:UploadImage", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to store upload", err)
	}

	return &UploadResult{
		Key: key,
		URL: s.publicURL + "/" + key,
	}, nil
}

// sanitizeFilename keeps the base name and strips anything that does not
// belong in an object key.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "upload"
	}
	return b.String()
}
