package http_movie

import (
	"errors"
	"log/slog"
	"net/http"

	http_common "github.com/adithyagarapati/movie-analyzer/internal/delivery/http/common"
	"github.com/adithyagarapati/movie-analyzer/internal/model"
	usecase_catalog "github.com/adithyagarapati/movie-analyzer/internal/usecase/catalog"
	"github.com/gin-gonic/gin"
)

// MovieResponseDTO is one catalog entry with its current thumbnail.
type MovieResponseDTO struct {
	ID        string `json:"id" example:"inception"`
	Title     string `json:"title" example:"Inception"`
	Year      int    `json:"year" example:"2010"`
	Genre     string `json:"genre" example:"Sci-Fi"`
	Thumbnail string `json:"thumbnail" example:"/images/movies/inception.jpg"`
}

type MoviesListResponseDTO struct {
	Movies []MovieResponseDTO `json:"movies"`
	Total  int                `json:"total"`
}

func ConvertFromMovieRecord(r model.MovieRecord) MovieResponseDTO {
	return MovieResponseDTO{
		ID:        r.ID,
		Title:     r.Title,
		Year:      r.Year,
		Genre:     r.Genre,
		Thumbnail: r.Thumbnail,
	}
}

func ConvertFromMovieRecordList(records []model.MovieRecord) []MovieResponseDTO {
	movies := make([]MovieResponseDTO, len(records))
	for i, r := range records {
		movies[i] = ConvertFromMovieRecord(r)
	}
	return movies
}

type Controller struct {
	uc     *usecase_catalog.Usecase
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_catalog.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/:movie_id", c.getMovie)
	movies.GET("/:movie_id/thumbnail", c.getThumbnail)
}

// @Summary List movies
// @Description Returns the catalog in presentation order with current thumbnails
// @Tags Movies
// @Produce json
// @Success 200 {object} MoviesListResponseDTO
// @Router /movies [get]
func (c *Controller) getMovies(ctx *gin.Context) {
	records := c.uc.List(ctx.Request.Context())

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies: ConvertFromMovieRecordList(records),
		Total:  len(records),
	})
}

// @Summary Get movie
// @Tags Movies
// @Produce json
// @Param movie_id path string true "Movie id" example("inception")
// @Success 200 {object} MovieResponseDTO
// @Failure 404 {object} http_common.ErrorResponse
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
	movieID := ctx.Param("movie_id")

	record, err := c.uc.Get(ctx.Request.Context(), movieID)
	if err != nil {
		c.writeError(ctx, movieID, err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovieRecord(record))
}

// @Summary Movie thumbnail
// @Description Redirects to the image url of the active source
// @Tags Movies
// @Param movie_id path string true "Movie id" example("inception")
// @Success 302
// @Failure 404 {object} http_common.ErrorResponse
// @Router /movies/{movie_id}/thumbnail [get]
func (c *Controller) getThumbnail(ctx *gin.Context) {
	movieID := ctx.Param("movie_id")

	url, err := c.uc.Thumbnail(ctx.Request.Context(), movieID)
	if err != nil {
		c.writeError(ctx, movieID, err)
		return
	}
	if url == model.EmptyThumbnail {
		ctx.JSON(http.StatusNotFound, http_common.NewErrorResponse(ctx, "no image for movie"))
		return
	}

	ctx.Redirect(http.StatusFound, url)
}

func (c *Controller) writeError(ctx *gin.Context, movieID string, err error) {
	if errors.Is(err, usecase_catalog.ErrMovieNotFound) {
		c.logger.Warn("movie not found", slog.String("movie_id", movieID))
		ctx.JSON(http.StatusNotFound, http_common.NewErrorResponse(ctx, "movie not found"))
		return
	}

	c.logger.Error("failed to load movie",
		slog.String("movie_id", movieID),
		slog.String("error", err.Error()),
	)
	ctx.JSON(http.StatusInternalServerError, http_common.NewErrorResponse(ctx, "internal error"))
}
