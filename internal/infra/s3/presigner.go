package infra_s3

import (
	"context"
	"fmt"
	"time"

	"github.com/adithyagarapati/movie-analyzer/internal/model"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Presigner signs GET urls for objects in private buckets. Signing happens
// locally and nothing is sent to the bucket.
type Presigner struct {
	client *s3.PresignClient
	ttl    time.Duration
}

func NewPresigner(client *s3.Client, ttl time.Duration) *Presigner {
	return &Presigner{
		client: s3.NewPresignClient(client),
		ttl:    ttl,
	}
}

func (p *Presigner) SignURL(ctx context.Context, bucket model.Bucket, key string) (string, error) {
	req, err := p.client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket.Name),
		Key:    aws.String(key),
	},
		s3.WithPresignExpires(p.ttl),
		s3.WithPresignClientFromClientOptions(func(o *s3.Options) {
			if bucket.Region != "" {
				o.Region = bucket.Region
			}
		}),
	)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s/%s: %w", bucket.Name, key, err)
	}

	return req.URL, nil
}
