package usecase_image_source

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adithyagarapati/movie-analyzer/internal/model"
	"github.com/adithyagarapati/movie-analyzer/internal/usecase/image_source/mocks"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseImageSourceUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase      *Usecase
	modeStore    *mocks.ModeStore
	mappingStore *mocks.MappingStore
	ctx          context.Context
}

func initResources(t provider.T, opts ...Option) *resources {
	modeStore := mocks.NewModeStore(t)
	mappingStore := mocks.NewMappingStore(t)
	opts = append([]Option{WithModeStore(modeStore), WithMappingStore(mappingStore)}, opts...)

	return &resources{
		usecase:      New(model.BuiltinMovies(), opts...),
		modeStore:    modeStore,
		mappingStore: mappingStore,
		ctx:          context.Background(),
	}
}

func (s *UsecaseImageSourceUnitSuite) TestDefaultModeIsRemote(t provider.T) {
	t.Parallel()
	r := initResources(t)

	assert.Equal(t, model.RemoteMode, r.usecase.Snapshot().CurrentSource)

	url, err := r.usecase.ResolveImageURL(r.ctx, "inception")
	assert.NoError(t, err)
	assert.Equal(t, "https://your-bucket-name.s3.amazonaws.com/movie-images/inception.jpg", url)
}

func (s *UsecaseImageSourceUnitSuite) TestResolveLocalMode(t provider.T) {
	t.Parallel()
	r := initResources(t, WithDefaultMode(model.LocalMode))

	local := DefaultLocalURLs()
	for _, m := range model.BuiltinMovies() {
		url, err := r.usecase.ResolveImageURL(r.ctx, m.ID)
		assert.NoError(t, err)
		assert.Equal(t, local[m.ID], url)
	}

	url, err := r.usecase.ResolveImageURL(r.ctx, "inception")
	assert.NoError(t, err)
	assert.Equal(t, "/images/movies/inception.jpg", url)
}

func (s *UsecaseImageSourceUnitSuite) TestLocalModeIgnoresRemote(t provider.T) {
	t.Parallel()
	r := initResources(t,
		WithDefaultMode(model.LocalMode),
		WithRemoteURLs(model.URLMapping{"gladiator": "https://cdn.example.com/gladiator.jpg"}),
	)

	url, err := r.usecase.ResolveImageURL(r.ctx, "gladiator")
	assert.NoError(t, err)
	assert.Equal(t, "/images/movies/gladiator.jpg", url)
}

func (s *UsecaseImageSourceUnitSuite) TestRemoteModeFallback(t provider.T) {
	t.Parallel()
	r := initResources(t, WithDefaultMode(model.LocalMode), WithRemoteURLs(model.URLMapping{"gladiator": "https://cdn.example.com/gladiator.jpg"}))
	r.modeStore.On("SaveMode", mock.Anything, model.RemoteMode).Return(nil).Once()

	assert.NoError(t, r.usecase.UseRemoteMode(r.ctx))

	url, err := r.usecase.ResolveImageURL(r.ctx, "gladiator")
	assert.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/gladiator.jpg", url)

	url, err = r.usecase.ResolveImageURL(r.ctx, "inception")
	assert.NoError(t, err)
	assert.Equal(t, "/images/movies/inception.jpg", url)
}

func (s *UsecaseImageSourceUnitSuite) TestApplyURLMappingsThenRemote(t provider.T) {
	t.Parallel()
	r := initResources(t, WithDefaultMode(model.LocalMode))
	mapping := model.URLMapping{"inception": "https://x/inception.jpg"}
	r.mappingStore.On("StoreBatch", mock.Anything, mapping).Return(nil).Once()
	r.modeStore.On("SaveMode", mock.Anything, model.RemoteMode).Return(nil).Once()

	assert.NoError(t, r.usecase.ApplyURLMappings(r.ctx, mapping))
	assert.NoError(t, r.usecase.UseRemoteMode(r.ctx))

	url, err := r.usecase.ResolveImageURL(r.ctx, "inception")
	assert.NoError(t, err)
	assert.Equal(t, "https://x/inception.jpg", url)
}

func (s *UsecaseImageSourceUnitSuite) TestApplyURLMappingsIsAtomic(t provider.T) {
	t.Parallel()

	t.Run("Should keep state when store fails", func(t provider.T) {
		r := initResources(t)
		before := r.usecase.AllRemoteURLs()
		r.mappingStore.On("StoreBatch", mock.Anything, mock.Anything).Return(errors.New("tx aborted")).Once()

		err := r.usecase.ApplyURLMappings(r.ctx, model.URLMapping{
			"inception": "https://x/inception.jpg",
			"gladiator": "https://x/gladiator.jpg",
		})

		assert.ErrorIs(t, err, ErrFailedToStoreMapping)
		assert.Equal(t, before, r.usecase.AllRemoteURLs())
	})

	t.Run("Should reject the whole batch on an unknown id", func(t provider.T) {
		r := initResources(t)
		before := r.usecase.AllRemoteURLs()

		err := r.usecase.ApplyURLMappings(r.ctx, model.URLMapping{
			"inception": "https://x/inception.jpg",
			"matrix":    "https://x/matrix.jpg",
		})

		assert.ErrorIs(t, err, ErrUnknownMovieID)
		assert.Equal(t, before, r.usecase.AllRemoteURLs())
		r.mappingStore.AssertNotCalled(t, "StoreBatch", mock.Anything, mock.Anything)
	})

	t.Run("Should reject an empty url", func(t provider.T) {
		r := initResources(t)

		err := r.usecase.SetRemoteURL(r.ctx, "inception", "  ")
		assert.ErrorIs(t, err, ErrInvalidURL)
	})
}

func (s *UsecaseImageSourceUnitSuite) TestConfigureBucket(t provider.T) {
	t.Parallel()
	r := initResources(t)
	r.mappingStore.On("StoreBatch", mock.Anything, mock.Anything).Return(nil).Once()
	r.modeStore.On("SaveMode", mock.Anything, model.RemoteMode).Return(nil).Once()

	applied, err := r.usecase.ConfigureBucket(r.ctx, model.Bucket{
		Name:       "my-bucket",
		Region:     "us-west-2",
		PathPrefix: "imgs",
	})
	assert.NoError(t, err)
	assert.Len(t, applied, 6)
	assert.Equal(t, "https://my-bucket.s3.amazonaws.com/imgs/shawshank-redemption.jpg", applied["shawshank"])

	url, err := r.usecase.ResolveImageURL(r.ctx, "gladiator")
	assert.NoError(t, err)
	assert.Equal(t, "https://my-bucket.s3.amazonaws.com/imgs/gladiator.jpg", url)
	assert.Equal(t, model.RemoteMode, r.usecase.Snapshot().CurrentSource)
}

func (s *UsecaseImageSourceUnitSuite) TestConfigureBucketValidation(t provider.T) {
	t.Parallel()
	r := initResources(t, WithDefaultMode(model.LocalMode))

	for _, name := range []string{"", "My_Bucket", "a", "bucket/with/slash"} {
		_, err := r.usecase.ConfigureBucket(r.ctx, model.Bucket{Name: name})
		assert.ErrorIs(t, err, ErrInvalidBucket, name)
	}
	assert.Equal(t, model.LocalMode, r.usecase.Snapshot().CurrentSource)
}

func (s *UsecaseImageSourceUnitSuite) TestConfigureBucketWithoutPrefix(t provider.T) {
	t.Parallel()
	r := initResources(t)
	r.mappingStore.On("StoreBatch", mock.Anything, mock.Anything).Return(nil).Once()
	r.modeStore.On("SaveMode", mock.Anything, model.RemoteMode).Return(nil).Once()

	applied, err := r.usecase.ConfigureBucket(r.ctx, model.Bucket{Name: "posters"})
	assert.NoError(t, err)
	assert.Equal(t, "https://posters.s3.amazonaws.com/dark-knight.jpg", applied["dark-knight"])
}

func (s *UsecaseImageSourceUnitSuite) TestAllRemoteURLsReturnsCopy(t provider.T) {
	t.Parallel()
	r := initResources(t, WithRemoteURLs(model.URLMapping{"inception": "https://x/inception.jpg"}))
	r.modeStore.On("SaveMode", mock.Anything, model.RemoteMode).Return(nil).Once()
	assert.NoError(t, r.usecase.UseRemoteMode(r.ctx))

	snapshot := r.usecase.AllRemoteURLs()
	snapshot["inception"] = "https://evil/inception.jpg"
	delete(snapshot, "inception")

	url, err := r.usecase.ResolveImageURL(r.ctx, "inception")
	assert.NoError(t, err)
	assert.Equal(t, "https://x/inception.jpg", url)
}

func (s *UsecaseImageSourceUnitSuite) TestSetMode(t provider.T) {
	t.Parallel()

	t.Run("Should reject unknown modes", func(t provider.T) {
		r := initResources(t, WithDefaultMode(model.LocalMode))

		err := r.usecase.SetMode(r.ctx, "ftp")
		assert.ErrorIs(t, err, ErrInvalidMode)
		assert.Equal(t, model.LocalMode, r.usecase.Snapshot().CurrentSource)
	})

	t.Run("Should accept the s3 alias", func(t provider.T) {
		r := initResources(t, WithDefaultMode(model.LocalMode))
		r.modeStore.On("SaveMode", mock.Anything, model.RemoteMode).Return(nil).Once()

		assert.NoError(t, r.usecase.SetMode(r.ctx, "s3"))
		assert.Equal(t, model.RemoteMode, r.usecase.Snapshot().CurrentSource)
	})

	t.Run("Should keep the old mode when the flag cannot be stored", func(t provider.T) {
		r := initResources(t, WithDefaultMode(model.LocalMode))
		r.modeStore.On("SaveMode", mock.Anything, model.RemoteMode).Return(errors.New("redis down")).Once()

		err := r.usecase.UseRemoteMode(r.ctx)
		assert.ErrorIs(t, err, ErrFailedToStoreMode)
		assert.Equal(t, model.LocalMode, r.usecase.Snapshot().CurrentSource)
	})
}

func (s *UsecaseImageSourceUnitSuite) TestUnknownMovieID(t provider.T) {
	t.Parallel()
	r := initResources(t)

	url, err := r.usecase.ResolveImageURL(r.ctx, "matrix")
	assert.ErrorIs(t, err, ErrUnknownMovieID)
	assert.Equal(t, model.EmptyThumbnail, url)

	err = r.usecase.SetRemoteURL(r.ctx, "matrix", "https://x/matrix.jpg")
	assert.ErrorIs(t, err, ErrUnknownMovieID)
}

func (s *UsecaseImageSourceUnitSuite) TestRestore(t provider.T) {
	t.Parallel()

	t.Run("Should apply persisted flag and urls", func(t provider.T) {
		r := initResources(t)
		r.modeStore.On("LoadMode", mock.Anything).Return("s3", nil).Once()
		r.mappingStore.On("Load", mock.Anything).Return(model.URLMapping{
			"inception": "https://cdn/inception.jpg",
			"matrix":    "https://cdn/matrix.jpg",
		}, nil).Once()

		assert.NoError(t, r.usecase.Restore(r.ctx))

		snapshot := r.usecase.Snapshot()
		assert.Equal(t, model.RemoteMode, snapshot.CurrentSource)
		assert.Equal(t, "https://cdn/inception.jpg", snapshot.RemoteURLs["inception"])
		assert.NotContains(t, snapshot.RemoteURLs, "matrix")
	})

	t.Run("Should keep defaults when nothing is persisted", func(t provider.T) {
		r := initResources(t)
		r.modeStore.On("LoadMode", mock.Anything).Return("", nil).Once()
		r.mappingStore.On("Load", mock.Anything).Return(model.URLMapping{}, nil).Once()

		assert.NoError(t, r.usecase.Restore(r.ctx))
		assert.Equal(t, model.RemoteMode, r.usecase.Snapshot().CurrentSource)
		assert.Equal(t, DefaultRemoteURLs(), r.usecase.AllRemoteURLs())
	})

	t.Run("Should restore local mode over the remote default", func(t provider.T) {
		r := initResources(t)
		r.modeStore.On("LoadMode", mock.Anything).Return("local", nil).Once()
		r.mappingStore.On("Load", mock.Anything).Return(model.URLMapping{}, nil).Once()

		assert.NoError(t, r.usecase.Restore(r.ctx))
		assert.Equal(t, model.LocalMode, r.usecase.Snapshot().CurrentSource)
	})

	t.Run("Should fail when the flag store fails", func(t provider.T) {
		r := initResources(t)
		r.modeStore.On("LoadMode", mock.Anything).Return("", errors.New("timeout")).Once()

		err := r.usecase.Restore(r.ctx)
		assert.ErrorIs(t, err, ErrFailedToLoadConfig)
	})
}

func (s *UsecaseImageSourceUnitSuite) TestPresignedBucket(t provider.T) {
	t.Parallel()

	bucket := model.Bucket{Name: "my-bucket", Region: "us-west-2", PathPrefix: "imgs"}
	signedBucket := model.Bucket{Name: "my-bucket", Region: "us-west-2"}

	t.Run("Should persist object uris instead of signed urls", func(t provider.T) {
		signer := mocks.NewURLSigner(t)
		r := initResources(t, WithURLBuilder(NewObjectURIBuilder()), WithURLSigner(signer))
		r.mappingStore.On("StoreBatch", mock.Anything, mock.MatchedBy(func(m model.URLMapping) bool {
			for _, url := range m {
				if strings.Contains(url, "X-Amz") {
					return false
				}
			}
			return m["gladiator"] == "s3://my-bucket/imgs/gladiator.jpg?region=us-west-2"
		})).Return(nil).Once()
		r.modeStore.On("SaveMode", mock.Anything, model.RemoteMode).Return(nil).Once()

		applied, err := r.usecase.ConfigureBucket(r.ctx, bucket)
		assert.NoError(t, err)
		assert.Equal(t, "s3://my-bucket/imgs/gladiator.jpg?region=us-west-2", applied["gladiator"])
		assert.Equal(t, "s3://my-bucket/imgs/gladiator.jpg?region=us-west-2", r.usecase.AllRemoteURLs()["gladiator"])
	})

	t.Run("Should sign on every resolve", func(t provider.T) {
		signer := mocks.NewURLSigner(t)
		r := initResources(t, WithURLBuilder(NewObjectURIBuilder()), WithURLSigner(signer))
		r.mappingStore.On("StoreBatch", mock.Anything, mock.Anything).Return(nil).Once()
		r.modeStore.On("SaveMode", mock.Anything, model.RemoteMode).Return(nil).Once()
		signer.On("SignURL", mock.Anything, signedBucket, "imgs/gladiator.jpg").
			Return("https://my-bucket.s3.us-west-2.amazonaws.com/imgs/gladiator.jpg?X-Amz-Signature=first", nil).Once()
		signer.On("SignURL", mock.Anything, signedBucket, "imgs/gladiator.jpg").
			Return("https://my-bucket.s3.us-west-2.amazonaws.com/imgs/gladiator.jpg?X-Amz-Signature=second", nil).Once()

		_, err := r.usecase.ConfigureBucket(r.ctx, bucket)
		assert.NoError(t, err)

		first, err := r.usecase.ResolveImageURL(r.ctx, "gladiator")
		assert.NoError(t, err)
		second, err := r.usecase.ResolveImageURL(r.ctx, "gladiator")
		assert.NoError(t, err)
		assert.Contains(t, first, "Signature=first")
		assert.Contains(t, second, "Signature=second")
	})

	t.Run("Should sign restored object uris", func(t provider.T) {
		signer := mocks.NewURLSigner(t)
		r := initResources(t, WithURLSigner(signer))
		r.modeStore.On("LoadMode", mock.Anything).Return("remote", nil).Once()
		r.mappingStore.On("Load", mock.Anything).Return(model.URLMapping{
			"gladiator": "s3://my-bucket/imgs/gladiator.jpg?region=us-west-2",
		}, nil).Once()
		signer.On("SignURL", mock.Anything, signedBucket, "imgs/gladiator.jpg").
			Return("https://signed/gladiator.jpg", nil).Once()

		assert.NoError(t, r.usecase.Restore(r.ctx))

		url, err := r.usecase.ResolveImageURL(r.ctx, "gladiator")
		assert.NoError(t, err)
		assert.Equal(t, "https://signed/gladiator.jpg", url)
	})

	t.Run("Should fall back to the local path when signing fails", func(t provider.T) {
		signer := mocks.NewURLSigner(t)
		r := initResources(t,
			WithURLSigner(signer),
			WithRemoteURLs(model.URLMapping{"gladiator": "s3://my-bucket/imgs/gladiator.jpg"}),
		)
		signer.On("SignURL", mock.Anything, model.Bucket{Name: "my-bucket", Region: model.DefaultBucketRegion}, "imgs/gladiator.jpg").
			Return("", errors.New("no credentials")).Once()

		url, err := r.usecase.ResolveImageURL(r.ctx, "gladiator")
		assert.NoError(t, err)
		assert.Equal(t, "/images/movies/gladiator.jpg", url)
	})

	t.Run("Should fall back to the local path without a signer", func(t provider.T) {
		r := initResources(t, WithRemoteURLs(model.URLMapping{"gladiator": "s3://my-bucket/imgs/gladiator.jpg"}))

		url, err := r.usecase.ResolveImageURL(r.ctx, "gladiator")
		assert.NoError(t, err)
		assert.Equal(t, "/images/movies/gladiator.jpg", url)
	})
}

func (s *UsecaseImageSourceUnitSuite) TestNotifier(t provider.T) {
	t.Parallel()
	notifier := mocks.NewNotifier(t)
	r := initResources(t, WithNotifier(notifier))
	r.modeStore.On("SaveMode", mock.Anything, model.RemoteMode).Return(nil).Once()
	notifier.On("ConfigChanged", mock.MatchedBy(func(s model.ConfigSnapshot) bool {
		return s.CurrentSource == model.RemoteMode
	})).Once()

	assert.NoError(t, r.usecase.UseRemoteMode(r.ctx))
}

func (s *UsecaseImageSourceUnitSuite) TestResolvePure(t provider.T) {
	t.Parallel()

	state := model.ImageSourceState{
		Mode:   model.RemoteMode,
		Local:  model.URLMapping{"a": "/a.jpg", "b": "/b.jpg"},
		Remote: model.URLMapping{"a": "https://r/a.jpg", "c": "https://r/c.jpg"},
	}

	testCases := []struct {
		name string
		mode model.ImageSourceMode
		id   string
		url  string
		ok   bool
	}{
		{name: "remote hit", mode: model.RemoteMode, id: "a", url: "https://r/a.jpg", ok: true},
		{name: "remote falls back to local", mode: model.RemoteMode, id: "b", url: "/b.jpg", ok: true},
		{name: "remote only entry", mode: model.RemoteMode, id: "c", url: "https://r/c.jpg", ok: true},
		{name: "local ignores remote", mode: model.LocalMode, id: "a", url: "/a.jpg", ok: true},
		{name: "local has no fallback", mode: model.LocalMode, id: "c", ok: false},
		{name: "unknown id", mode: model.RemoteMode, id: "z", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			state.Mode = tc.mode
			url, ok := Resolve(state, tc.id)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.url, url)
		})
	}
}

func (s *UsecaseImageSourceUnitSuite) TestCatalogIDsHaveLocalURLs(t provider.T) {
	local := DefaultLocalURLs()
	for _, m := range model.BuiltinMovies() {
		assert.Contains(t, local, m.ID)
	}
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseImageSourceUnitSuite))
}
