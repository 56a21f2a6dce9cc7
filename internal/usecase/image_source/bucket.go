package usecase_image_source

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/adithyagarapati/movie-analyzer/internal/model"
)

var bucketNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9.-]{1,61}[a-z0-9]$`)

type PublicURLBuilder struct {
	domain string
}

func NewPublicURLBuilder(domain string) *PublicURLBuilder {
	if domain == "" {
		domain = DefaultStorageDomain
	}
	return &PublicURLBuilder{domain: strings.Trim(domain, "/")}
}

func (b *PublicURLBuilder) BuildURL(_ context.Context, bucket model.Bucket, slug string) (string, error) {
	return fmt.Sprintf("https://%s.%s/%s", bucket.Name, b.domain, bucket.ObjectKey(slug)), nil
}

// ObjectURIBuilder stores s3:// uris for private buckets. ResolveImageURL
// signs them through the configured URLSigner.
type ObjectURIBuilder struct{}

func NewObjectURIBuilder() *ObjectURIBuilder {
	return &ObjectURIBuilder{}
}

func (b *ObjectURIBuilder) BuildURL(_ context.Context, bucket model.Bucket, slug string) (string, error) {
	return bucket.ObjectURI(slug), nil
}

// ConfigureBucket points every catalog movie at <bucket>/<prefix>/<slug>.jpg,
// switches to remote mode and returns the applied urls.
func (u *Usecase) ConfigureBucket(ctx context.Context, bucket model.Bucket) (model.URLMapping, error) {
	bucket.Name = strings.TrimSpace(bucket.Name)
	if !bucketNameRe.MatchString(bucket.Name) {
		return nil, fmt.Errorf("%w: bad name %q", ErrInvalidBucket, bucket.Name)
	}
	if bucket.Region == "" {
		bucket.Region = model.DefaultBucketRegion
	}

	mapping := make(model.URLMapping, len(u.movies))
	for _, m := range u.movies {
		url, err := u.builder.BuildURL(ctx, bucket, m.Slug)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToBuildURL, err)
		}
		mapping[m.ID] = url
	}

	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	if err := u.applyAndActivateLocked(ctx, mapping); err != nil {
		return nil, err
	}

	u.logger.Info("bucket configured",
		"bucket", bucket.Name,
		"region", bucket.Region,
		"path_prefix", bucket.PathPrefix,
	)
	u.notifyLocked()
	return mapping.Clone(), nil
}
