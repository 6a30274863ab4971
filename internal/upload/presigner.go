package upload

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/aniketSingh0310/user-dash/internal/config"
)

// Presigner hands out presigned PUT URLs so browsers upload profile images
// straight to the object store. The server never sees the image bytes; the
// client stores the resulting public URL as the user's profilePicture.
type Presigner struct {
	cfg config.Config
}

func NewPresigner(cfg config.Config) *Presigner {
	return &Presigner{cfg: cfg}
}

// storageKey partitions objects by date and keeps the original extension so
// the public URL stays content-type friendly.
func storageKey(filename string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("profile-pictures/%d/%02d/%02d/%s%s",
		d.Year(), int(d.Month()), d.Day(), uuid.New(), strings.ToLower(filepath.Ext(filename)))
}

func (p *Presigner) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(p.cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			p.cfg.S3AccessKey,
			p.cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if p.cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(p.cfg.S3BaseEndpoint)
		}
	})

	return s3.NewPresignClient(client), nil
}

// PresignPut returns the object key, a 15-minute presigned PUT URL and the
// public URL the object will have once uploaded.
func (p *Presigner) PresignPut(ctx context.Context, filename string) (string, string, string, error) {
	presignClient, err := p.getPresignClient(ctx)
	if err != nil {
		return "", "", "", err
	}

	bucket := p.cfg.S3Bucket
	key := storageKey(filename)

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", "", "", err
	}

	publicURL := strings.TrimRight(p.cfg.S3PublicURL, "/") + "/" + key
	return key, req.URL, publicURL, nil
}
