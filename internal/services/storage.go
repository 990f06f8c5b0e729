package services

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// StorageService brokers image uploads to an S3-compatible object store. The
// server only hands out presigned PUT URLs; bytes go straight from the client
// to the bucket.
type StorageService struct {
	Region       string
	Bucket       string
	BaseEndpoint string
	PublicBase   string
	AccessKey    string
	SecretKey    string
}

func NewStorageServiceFromEnv() *StorageService {
	return &StorageService{
		Region:       os.Getenv("S3_REGION"),
		Bucket:       os.Getenv("S3_BUCKET"),
		BaseEndpoint: os.Getenv("S3_ENDPOINT"),
		PublicBase:   os.Getenv("S3_PUBLIC_BASE_URL"),
		AccessKey:    os.Getenv("S3_ACCESS_KEY"),
		SecretKey:    os.Getenv("S3_SECRET_KEY"),
	}
}

func (s *StorageService) Enabled() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

// JournalImageKey builds the object key for a journal upload:
// journal-images/<user_id>/<random-id>-<original-filename>.
func JournalImageKey(userID uint, filename string) string {
	return fmt.Sprintf("journal-images/%d/%s-%s", userID, uuid.New(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = path.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "." || name == "/" || name == "" {
		return "upload"
	}
	return name
}

func (s *StorageService) presignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.AccessKey,
			s.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.BaseEndpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}

// PresignJournalImage returns a presigned PUT URL for the upload and the
// durable public URL to store verbatim as image_url.
func (s *StorageService) PresignJournalImage(ctx context.Context, userID uint, filename string) (string, string, error) {
	presignClient, err := s.presignClient(ctx)
	if err != nil {
		return "", "", err
	}

	key := JournalImageKey(userID, filename)

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &s.Bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", err
	}

	return req.URL, s.PublicURL(key), nil
}

func (s *StorageService) PublicURL(key string) string {
	base := s.PublicBase
	if base == "" {
		base = fmt.Sprintf("%s/%s", strings.TrimSuffix(s.BaseEndpoint, "/"), s.Bucket)
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(base, "/"), key)
}
