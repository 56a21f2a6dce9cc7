package http_image_source

import (
	"errors"
	"log/slog"
	"net/http"

	http_common "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/common"
	http_auth_middleware "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/middleware/auth"
	"github.com/adithyagarapati/movie-analyzer/internal/model"
	usecase_image_source "github.com/adithyagarapati/movie-analyzer/internal/usecase/image_source"
	"github.com/gin-gonic/gin"
)

type ConfigResponseDTO struct {
	CurrentSource string            `json:"current_source" example:"remote"`
	RemoteURLs    map[string]string `json:"remote_urls"`
}

type RemoteURLsResponseDTO struct {
	URLs map[string]string `json:"urls"`
}

type SetModeRequestDTO struct {
	Mode string `json:"mode" binding:"required" example:"remote"`
}

type SetRemoteURLRequestDTO struct {
	URL string `json:"url" binding:"required" example:"https://cdn.example.com/inception.jpg"`
}

type ApplyURLsRequestDTO struct {
	URLs map[string]string `json:"urls" binding:"required"`
	// Activate switches to the remote source after the urls are stored.
	Activate bool `json:"activate"`
}

type ConfigureBucketRequestDTO struct {
	Bucket     string `json:"bucket" binding:"required" example:"my-bucket"`
	Region     string `json:"region" example:"us-west-2"`
	PathPrefix string `json:"path_prefix" example:"movie-images"`
}

func ConvertFromSnapshot(s model.ConfigSnapshot) ConfigResponseDTO {
	return ConfigResponseDTO{
		CurrentSource: s.CurrentSource.String(),
		RemoteURLs:    s.RemoteURLs,
	}
}

type Controller struct {
	uc             *usecase_image_source.Usecase
	authMiddleware *http_auth_middleware.Middleware
	logger         *slog.Logger
}

func New(
	uc *usecase_image_source.Usecase,
	authMiddleware *http_auth_middleware.Middleware,
) *Controller {
	return &Controller{
		uc:             uc,
		authMiddleware: authMiddleware,
		logger:         slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	images := router.Group("/images")
	{
		images.GET("/config", c.getConfig)
		images.GET("/remote", c.getRemoteURLs)
	}

	admin := images.Group("", c.authMiddleware.AuthRequired())
	{
		admin.PUT("/mode", c.setMode)
		admin.PUT("/remote/:movie_id", c.setRemoteURL)
		admin.POST("/remote", c.applyURLs)
		admin.POST("/bucket", c.configureBucket)
	}
}

// @Summary Image source config
// @Tags Images
// @Produce json
// @Success 200 {object} ConfigResponseDTO
// @Router /images/config [get]
func (c *Controller) getConfig(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, ConvertFromSnapshot(c.uc.Snapshot()))
}

// @Summary Remote image urls
// @Tags Images
// @Produce json
// @Success 200 {object} RemoteURLsResponseDTO
// @Router /images/remote [get]
func (c *Controller) getRemoteURLs(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, RemoteURLsResponseDTO{
		URLs: c.uc.AllRemoteURLs(),
	})
}

// @Summary Switch image source
// @Tags Images
// @Accept json
// @Param request body SetModeRequestDTO true "local or remote"
// @Success 200 {object} ConfigResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Security AdminToken
// @Router /images/mode [put]
func (c *Controller) setMode(ctx *gin.Context) {
	var req SetModeRequestDTO
	if !c.bind(ctx, &req) {
		return
	}

	if err := c.uc.SetMode(ctx.Request.Context(), req.Mode); err != nil {
		c.writeError(ctx, "failed to set image source", err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromSnapshot(c.uc.Snapshot()))
}

// @Summary Set one remote url
// @Tags Images
// @Accept json
// @Param movie_id path string true "Movie id" example("inception")
// @Param request body SetRemoteURLRequestDTO true "Image url"
// @Success 204
// @Failure 400 {object} http_common.ErrorResponse
// @Failure 404 {object} http_common.ErrorResponse
// @Security AdminToken
// @Router /images/remote/{movie_id} [put]
func (c *Controller) setRemoteURL(ctx *gin.Context) {
	movieID := ctx.Param("movie_id")

	var req SetRemoteURLRequestDTO
	if !c.bind(ctx, &req) {
		return
	}

	if err := c.uc.SetRemoteURL(ctx.Request.Context(), movieID, req.URL); err != nil {
		if errors.Is(err, usecase_image_source.ErrUnknownMovieID) {
			ctx.JSON(http.StatusNotFound, http_common.NewErrorResponse(ctx, "movie not found"))
			return
		}
		c.writeError(ctx, "failed to set remote url", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// @Summary Set many remote urls
// @Description All-or-nothing; activate=true also switches to the remote source
// @Tags Images
// @Accept json
// @Param request body ApplyURLsRequestDTO true "movie id -> url"
// @Success 200 {object} ConfigResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Security AdminToken
// @Router /images/remote [post]
func (c *Controller) applyURLs(ctx *gin.Context) {
	var req ApplyURLsRequestDTO
	if !c.bind(ctx, &req) {
		return
	}

	var err error
	if req.Activate {
		err = c.uc.UseCustomURLs(ctx.Request.Context(), req.URLs)
	} else {
		err = c.uc.ApplyURLMappings(ctx.Request.Context(), req.URLs)
	}
	if err != nil {
		c.writeError(ctx, "failed to apply remote urls", err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromSnapshot(c.uc.Snapshot()))
}

// @Summary Point every movie at a bucket
// @Tags Images
// @Accept json
// @Param request body ConfigureBucketRequestDTO true "Bucket layout"
// @Success 200 {object} RemoteURLsResponseDTO
// @Failure 400 {object} http_common.ErrorResponse
// @Security AdminToken
// @Router /images/bucket [post]
func (c *Controller) configureBucket(ctx *gin.Context) {
	var req ConfigureBucketRequestDTO
	if !c.bind(ctx, &req) {
		return
	}

	applied, err := c.uc.ConfigureBucket(ctx.Request.Context(), model.Bucket{
		Name:       req.Bucket,
		Region:     req.Region,
		PathPrefix: req.PathPrefix,
	})
	if err != nil {
		c.writeError(ctx, "failed to configure bucket", err)
		return
	}

	ctx.JSON(http.StatusOK, RemoteURLsResponseDTO{URLs: applied})
}

func (c *Controller) bind(ctx *gin.Context, req any) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		c.logger.Warn("invalid request body",
			slog.String("request_id", http_common.RequestID(ctx)),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.NewErrorResponse(ctx, "invalid request body"))
		return false
	}
	return true
}

func (c *Controller) writeError(ctx *gin.Context, msg string, err error) {
	switch {
	case errors.Is(err, usecase_image_source.ErrInvalidMode),
		errors.Is(err, usecase_image_source.ErrUnknownMovieID),
		errors.Is(err, usecase_image_source.ErrInvalidURL),
		errors.Is(err, usecase_image_source.ErrInvalidBucket):
		c.logger.Warn(msg,
			slog.String("request_id", http_common.RequestID(ctx)),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.NewErrorResponse(ctx, err.Error()))
	default:
		c.logger.Error(msg,
			slog.String("request_id", http_common.RequestID(ctx)),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.NewErrorResponse(ctx, "internal error"))
	}
}
