package app

import (
	"context"
	"log"
	"time"

	"github.com/adithyagarapati/movie-analyzer/internal/config"
	http_image_source "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/image_source"
	http_init "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/init"
	http_access_middleware "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/middleware/auth"
	http_request_id_middleware "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/middleware/request_id"
	http_movie "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/movie"
	ws_config "github.com/adithyagarapati/movie-analyzer/internal/delivery/ws/config"
	infra_pg_init "github.com/adithyagarapati/movie-analyzer/internal/infra/postgres/init"
	infra_postgres_remote_url "github.com/adithyagarapati/movie-analyzer/internal/infra/postgres/remote_url"
	infra_redis_init "github.com/adithyagarapati/movie-analyzer/internal/infra/redis/init"
	infra_redis_mode_flag "github.com/adithyagarapati/movie-analyzer/internal/infra/redis/mode_flag"
	infra_s3 "github.com/adithyagarapati/movie-analyzer/internal/infra/s3"
	"github.com/adithyagarapati/movie-analyzer/internal/logger"
	"github.com/adithyagarapati/movie-analyzer/internal/model"
	usecase_catalog "github.com/adithyagarapati/movie-analyzer/internal/usecase/catalog"
	usecase_image_source "github.com/adithyagarapati/movie-analyzer/internal/usecase/image_source"
)

const startupTimeout = 10 * time.Second

func Go(cfg *config.Config) {
	appLogger := logger.Init(cfg.Log)
	movies := model.BuiltinMovies()

	defaultMode, err := model.ParseImageSourceMode(cfg.Images.DefaultSource)
	if err != nil {
		log.Fatalf("[app] %v", err)
	}

	hub := ws_config.NewHub(appLogger)
	opts := []usecase_image_source.Option{
		usecase_image_source.WithDefaultMode(defaultMode),
		usecase_image_source.WithNotifier(hub),
		usecase_image_source.WithLogger(appLogger),
		usecase_image_source.WithURLBuilder(usecase_image_source.NewPublicURLBuilder(cfg.Images.StorageDomain)),
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	if cfg.Redis.Enabled {
		redisConn := infra_redis_init.MustEstablishConn(ctx, cfg.Redis)
		opts = append(opts, usecase_image_source.WithModeStore(infra_redis_mode_flag.New(redisConn, cfg.Redis.Key)))
	}

	if cfg.Postgres.Enabled {
		pgConn := infra_pg_init.MustEstablishConn(ctx, cfg.Postgres)
		remoteURLRepository := infra_postgres_remote_url.New(pgConn)
		if err := remoteURLRepository.EnsureSchema(ctx); err != nil {
			log.Fatalf("[app] %v", err)
		}
		opts = append(opts, usecase_image_source.WithMappingStore(remoteURLRepository))
	}

	if cfg.S3.Presign {
		s3conn := infra_s3.MustEstablishConn(cfg.S3)
		opts = append(opts,
			usecase_image_source.WithURLBuilder(usecase_image_source.NewObjectURIBuilder()),
			usecase_image_source.WithURLSigner(infra_s3.NewPresigner(s3conn, cfg.S3.PresignTTL)),
		)
	}

	imageUC := usecase_image_source.New(movies, opts...)
	if err := usecase_catalog.Validate(movies, imageUC.State().Local); err != nil {
		log.Fatalf("[app] %v", err)
	}
	if err := imageUC.Restore(ctx); err != nil {
		log.Fatalf("[app] %v", err)
	}

	catalogUC := usecase_catalog.New(movies, imageUC,
		usecase_catalog.WithPlaceholder(cfg.Images.Placeholder),
		usecase_catalog.WithLogger(appLogger),
	)

	authMiddleware := http_auth_middleware.New(http_auth_middleware.NewStaticToken(cfg.Admin.Token))

	controllerPool := http_init.NewControllerPool(
		http_request_id_middleware.RequestID(),
		http_access_middleware.ReadOnlyBadGatewayMiddleware(cfg.HTTP.Mode),
	)
	controllerPool.Add(http_movie.New(catalogUC, http_movie.WithLogger(appLogger)))
	controllerPool.Add(http_image_source.New(imageUC, authMiddleware))
	controllerPool.Add(ws_config.NewController(hub, imageUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Host, cfg.HTTP.Port)
}
