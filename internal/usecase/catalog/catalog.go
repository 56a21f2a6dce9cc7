package usecase_catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adithyagarapati/movie-analyzer/internal/model"
)

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrMissingLocalURL = errors.New("catalog movie has no local image")
)

type Resolver interface {
	ResolveImageURL(ctx context.Context, movieID string) (string, error)
}

// Usecase serves the fixed catalog. Thumbnails are resolved on every read so a
// mode or mapping switch shows up without rebuilding anything.
type Usecase struct {
	movies      []model.Movie
	resolver    Resolver
	placeholder string
	logger      *slog.Logger
}

type Option func(*Usecase)

func WithPlaceholder(url string) Option {
	return func(u *Usecase) {
		u.placeholder = url
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(movies []model.Movie, resolver Resolver, opts ...Option) *Usecase {
	u := &Usecase{
		movies:      movies,
		resolver:    resolver,
		placeholder: model.EmptyThumbnail,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Validate checks that every movie resolves against the given local mapping.
func Validate(movies []model.Movie, local model.URLMapping) error {
	seen := make(map[string]struct{}, len(movies))
	for _, m := range movies {
		if _, dup := seen[m.ID]; dup {
			return fmt.Errorf("duplicate movie id %q", m.ID)
		}
		seen[m.ID] = struct{}{}

		if local[m.ID] == "" {
			return fmt.Errorf("%w: %q", ErrMissingLocalURL, m.ID)
		}
	}
	return nil
}

func (u *Usecase) List(ctx context.Context) []model.MovieRecord {
	records := make([]model.MovieRecord, 0, len(u.movies))
	for _, m := range u.movies {
		records = append(records, m.ToRecord(u.thumbnail(ctx, m.ID)))
	}
	return records
}

func (u *Usecase) Get(ctx context.Context, movieID string) (model.MovieRecord, error) {
	for _, m := range u.movies {
		if m.ID == movieID {
			return m.ToRecord(u.thumbnail(ctx, m.ID)), nil
		}
	}
	return model.MovieRecord{}, fmt.Errorf("%w: %q", ErrMovieNotFound, movieID)
}

func (u *Usecase) Thumbnail(ctx context.Context, movieID string) (string, error) {
	record, err := u.Get(ctx, movieID)
	if err != nil {
		return model.EmptyThumbnail, err
	}
	return record.Thumbnail, nil
}

func (u *Usecase) thumbnail(ctx context.Context, movieID string) string {
	url, err := u.resolver.ResolveImageURL(ctx, movieID)
	if err != nil {
		u.logger.Warn("no image for movie",
			slog.String("movie_id", movieID),
			slog.String("error", err.Error()),
		)
		return u.placeholder
	}
	return url
}
