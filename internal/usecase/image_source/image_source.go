package usecase_image_source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/adithyagarapati/movie-analyzer/internal/model"
)

var (
	ErrInvalidMode          = model.ErrInvalidMode
	ErrUnknownMovieID       = errors.New("unknown movie id")
	ErrInvalidURL           = errors.New("invalid image url")
	ErrInvalidBucket        = errors.New("invalid bucket")
	ErrFailedToStoreMode    = errors.New("failed to store image source mode")
	ErrFailedToStoreMapping = errors.New("failed to store remote urls")
	ErrFailedToLoadConfig   = errors.New("failed to load image config")
	ErrFailedToBuildURL     = errors.New("failed to build bucket url")
)

type ModeStore interface {
	// LoadMode returns an empty string when no flag has been persisted yet.
	LoadMode(ctx context.Context) (string, error)
	SaveMode(ctx context.Context, mode model.ImageSourceMode) error
}

type MappingStore interface {
	Load(ctx context.Context) (model.URLMapping, error)
	StoreBatch(ctx context.Context, mapping model.URLMapping) error
}

type Notifier interface {
	ConfigChanged(snapshot model.ConfigSnapshot)
}

type URLBuilder interface {
	BuildURL(ctx context.Context, bucket model.Bucket, slug string) (string, error)
}

// URLSigner turns a stored s3:// object uri into a short-lived GET url.
type URLSigner interface {
	SignURL(ctx context.Context, bucket model.Bucket, key string) (string, error)
}

type Usecase struct {
	// writeMu serializes writers so store order and notification order
	// match memory order.
	writeMu sync.Mutex
	mu      sync.RWMutex
	state   model.ImageSourceState

	movies []model.Movie
	known  map[string]struct{}

	modeStore    ModeStore
	mappingStore MappingStore
	notifier     Notifier
	builder      URLBuilder
	signer       URLSigner
	logger       *slog.Logger
}

type Option func(*Usecase)

func WithModeStore(s ModeStore) Option {
	return func(u *Usecase) {
		u.modeStore = s
	}
}

func WithMappingStore(s MappingStore) Option {
	return func(u *Usecase) {
		u.mappingStore = s
	}
}

func WithNotifier(n Notifier) Option {
	return func(u *Usecase) {
		u.notifier = n
	}
}

func WithURLBuilder(b URLBuilder) Option {
	return func(u *Usecase) {
		u.builder = b
	}
}

func WithURLSigner(s URLSigner) Option {
	return func(u *Usecase) {
		u.signer = s
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func WithDefaultMode(mode model.ImageSourceMode) Option {
	return func(u *Usecase) {
		u.state.Mode = mode
	}
}

func WithRemoteURLs(mapping model.URLMapping) Option {
	return func(u *Usecase) {
		u.state.Remote = mapping.Clone()
	}
}

func New(movies []model.Movie, opts ...Option) *Usecase {
	u := &Usecase{
		state: model.ImageSourceState{
			Mode:   DefaultMode,
			Local:  DefaultLocalURLs(),
			Remote: DefaultRemoteURLs(),
		},
		movies:  movies,
		known:   make(map[string]struct{}, len(movies)),
		builder: NewPublicURLBuilder(DefaultStorageDomain),
		logger:  slog.Default(),
	}
	for _, m := range movies {
		u.known[m.ID] = struct{}{}
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Restore syncs in-memory state with the persisted flag and remote urls.
// In-memory state stays the source of truth afterwards.
func (u *Usecase) Restore(ctx context.Context) error {
	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	next := u.State()

	if u.modeStore != nil {
		raw, err := u.modeStore.LoadMode(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
		}
		if raw != "" {
			mode, err := model.ParseImageSourceMode(raw)
			if err != nil {
				u.logger.Warn("ignoring persisted image source", slog.String("value", raw))
			} else {
				next.Mode = mode
			}
		}
	}

	if u.mappingStore != nil {
		stored, err := u.mappingStore.Load(ctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
		}
		for id, url := range stored {
			if _, ok := u.known[id]; !ok || url == "" {
				u.logger.Warn("ignoring persisted remote url",
					slog.String("movie_id", id),
					slog.String("url", url),
				)
				continue
			}
			next.Remote[id] = url
		}
	}

	u.mu.Lock()
	u.state = next
	u.mu.Unlock()

	u.logger.Info("image config restored",
		slog.String("mode", next.Mode.String()),
		slog.Int("remote_urls", len(next.Remote)),
	)
	return nil
}

func (u *Usecase) SetMode(ctx context.Context, raw string) error {
	mode, err := model.ParseImageSourceMode(raw)
	if err != nil {
		return err
	}

	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	if err := u.setModeLocked(ctx, mode); err != nil {
		return err
	}
	u.notifyLocked()
	return nil
}

func (u *Usecase) UseLocalMode(ctx context.Context) error {
	return u.SetMode(ctx, model.LocalMode.String())
}

func (u *Usecase) UseRemoteMode(ctx context.Context) error {
	return u.SetMode(ctx, model.RemoteMode.String())
}

func (u *Usecase) SetRemoteURL(ctx context.Context, movieID, url string) error {
	return u.ApplyURLMappings(ctx, model.URLMapping{movieID: url})
}

// ApplyURLMappings validates the whole batch before anything is written, so a
// bad entry or a store failure leaves the remote mapping untouched.
func (u *Usecase) ApplyURLMappings(ctx context.Context, mapping model.URLMapping) error {
	cleaned, err := u.validate(mapping)
	if err != nil {
		return err
	}
	if len(cleaned) == 0 {
		return nil
	}

	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	if err := u.applyLocked(ctx, cleaned); err != nil {
		return err
	}
	u.notifyLocked()
	return nil
}

func (u *Usecase) UseCustomURLs(ctx context.Context, mapping model.URLMapping) error {
	cleaned, err := u.validate(mapping)
	if err != nil {
		return err
	}

	u.writeMu.Lock()
	defer u.writeMu.Unlock()

	if err := u.applyAndActivateLocked(ctx, cleaned); err != nil {
		return err
	}
	u.notifyLocked()
	return nil
}

// ResolveImageURL returns the url for movieID under the active mode. Stored
// s3:// entries are signed here, on every call, so nothing that expires is
// ever persisted.
func (u *Usecase) ResolveImageURL(ctx context.Context, movieID string) (string, error) {
	u.mu.RLock()
	url, ok := Resolve(u.state, movieID)
	local := u.state.Local[movieID]
	u.mu.RUnlock()

	if !ok {
		return model.EmptyThumbnail, fmt.Errorf("%w: %q", ErrUnknownMovieID, movieID)
	}

	bucket, key, isObject := model.ParseObjectURI(url)
	if !isObject {
		return url, nil
	}

	if u.signer != nil {
		signed, err := u.signer.SignURL(ctx, bucket, key)
		if err == nil {
			return signed, nil
		}
		u.logger.Warn("failed to sign image url",
			slog.String("movie_id", movieID),
			slog.String("error", err.Error()),
		)
	} else {
		u.logger.Warn("no signer for object url", slog.String("movie_id", movieID))
	}

	if local == "" {
		return model.EmptyThumbnail, fmt.Errorf("%w: %q", ErrUnknownMovieID, movieID)
	}
	return local, nil
}

func (u *Usecase) AllRemoteURLs() model.URLMapping {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.state.Remote.Clone()
}

func (u *Usecase) Snapshot() model.ConfigSnapshot {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return model.ConfigSnapshot{
		CurrentSource: u.state.Mode,
		RemoteURLs:    u.state.Remote.Clone(),
	}
}

func (u *Usecase) State() model.ImageSourceState {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return model.ImageSourceState{
		Mode:   u.state.Mode,
		Local:  u.state.Local.Clone(),
		Remote: u.state.Remote.Clone(),
	}
}

func (u *Usecase) validate(mapping model.URLMapping) (model.URLMapping, error) {
	cleaned := make(model.URLMapping, len(mapping))
	for id, url := range mapping {
		if _, ok := u.known[id]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMovieID, id)
		}
		url = strings.TrimSpace(url)
		if url == "" {
			return nil, fmt.Errorf("%w: empty url for %q", ErrInvalidURL, id)
		}
		cleaned[id] = url
	}
	return cleaned, nil
}

func (u *Usecase) setModeLocked(ctx context.Context, mode model.ImageSourceMode) error {
	if u.modeStore != nil {
		if err := u.modeStore.SaveMode(ctx, mode); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToStoreMode, err)
		}
	}

	u.mu.Lock()
	u.state.Mode = mode
	u.mu.Unlock()

	u.logger.Info("image source switched", slog.String("mode", mode.String()))
	return nil
}

func (u *Usecase) applyLocked(ctx context.Context, mapping model.URLMapping) error {
	if u.mappingStore != nil {
		if err := u.mappingStore.StoreBatch(ctx, mapping); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToStoreMapping, err)
		}
	}

	u.mu.Lock()
	remote := u.state.Remote.Clone()
	for id, url := range mapping {
		remote[id] = url
	}
	u.state.Remote = remote
	u.mu.Unlock()

	ids := make([]string, 0, len(mapping))
	for id := range mapping {
		ids = append(ids, id)
	}
	u.logger.Info("remote urls updated", slog.Any("movie_ids", ids))
	return nil
}

func (u *Usecase) applyAndActivateLocked(ctx context.Context, mapping model.URLMapping) error {
	if len(mapping) > 0 {
		if err := u.applyLocked(ctx, mapping); err != nil {
			return err
		}
	}
	return u.setModeLocked(ctx, model.RemoteMode)
}

// notifyLocked must run with writeMu held so subscribers see changes in order.
func (u *Usecase) notifyLocked() {
	if u.notifier == nil {
		return
	}
	u.notifier.ConfigChanged(u.Snapshot())
}
