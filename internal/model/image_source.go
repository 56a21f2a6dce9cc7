package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var ErrInvalidMode = errors.New("invalid image source mode")

type ImageSourceMode string

const (
	LocalMode  ImageSourceMode = "local"
	RemoteMode ImageSourceMode = "remote"

	// legacyRemoteAlias is what older front-end builds persist for the bucket source.
	legacyRemoteAlias = "s3"
)

func ParseImageSourceMode(s string) (ImageSourceMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(LocalMode):
		return LocalMode, nil
	case string(RemoteMode), legacyRemoteAlias:
		return RemoteMode, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

func (m ImageSourceMode) String() string {
	return string(m)
}

// URLMapping maps a movie id to an absolute or site-relative image URL.
type URLMapping map[string]string

func (m URLMapping) Clone() URLMapping {
	c := make(URLMapping, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

type ImageSourceState struct {
	Mode   ImageSourceMode
	Local  URLMapping
	Remote URLMapping
}

type ConfigSnapshot struct {
	CurrentSource ImageSourceMode
	RemoteURLs    URLMapping
}

type Bucket struct {
	Name       string
	Region     string
	PathPrefix string
}

const DefaultBucketRegion = "us-east-1"

const imageExt = ".jpg"

// ObjectKey returns the key of a movie image inside the bucket.
func (b Bucket) ObjectKey(slug string) string {
	prefix := strings.Trim(b.PathPrefix, "/")
	if prefix == "" {
		return slug + imageExt
	}
	return prefix + "/" + slug + imageExt
}

const objectScheme = "s3"

// ObjectURI identifies a movie image by bucket and key instead of a public
// url, e.g. s3://my-bucket/imgs/gladiator.jpg?region=us-west-2.
func (b Bucket) ObjectURI(slug string) string {
	u := url.URL{
		Scheme: objectScheme,
		Host:   b.Name,
		Path:   "/" + b.ObjectKey(slug),
	}
	if b.Region != "" {
		u.RawQuery = url.Values{"region": {b.Region}}.Encode()
	}
	return u.String()
}

// ParseObjectURI reverses ObjectURI. ok is false for anything that is not an
// s3:// uri with both a bucket and a key.
func ParseObjectURI(raw string) (b Bucket, key string, ok bool) {
	if !strings.HasPrefix(raw, objectScheme+"://") {
		return Bucket{}, "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return Bucket{}, "", false
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return Bucket{}, "", false
	}
	b = Bucket{Name: u.Host, Region: u.Query().Get("region")}
	if b.Region == "" {
		b.Region = DefaultBucketRegion
	}
	return b, key, true
}
