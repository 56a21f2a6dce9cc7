package usecase_image_source

import "github.com/adithyagarapati/movie-analyzer/internal/model"

const (
	DefaultStorageDomain = "s3.amazonaws.com"

	// DefaultMode serves thumbnails from the bucket unless overridden.
	DefaultMode = model.RemoteMode
)

func DefaultLocalURLs() model.URLMapping {
	return model.URLMapping{
		"shawshank":    "/images/movies/shawshank-redemption.jpg",
		"inception":    "/images/movies/inception.jpg",
		"interstellar": "/images/movies/interstellar.jpg",
		"fight-club":   "/images/movies/fight-club.jpg",
		"gladiator":    "/images/movies/gladiator.jpg",
		"dark-knight":  "/images/movies/dark-knight.jpg",
	}
}

// DefaultRemoteURLs points at a placeholder bucket until ConfigureBucket or
// ApplyURLMappings replaces the entries.
func DefaultRemoteURLs() model.URLMapping {
	return model.URLMapping{
		"shawshank":    "https://your-bucket-name.s3.amazonaws.com/movie-images/shawshank-redemption.jpg",
		"inception":    "https://your-bucket-name.s3.amazonaws.com/movie-images/inception.jpg",
		"interstellar": "https://your-bucket-name.s3.amazonaws.com/movie-images/interstellar.jpg",
		"fight-club":   "https://your-bucket-name.s3.amazonaws.com/movie-images/fight-club.jpg",
		"gladiator":    "https://your-bucket-name.s3.amazonaws.com/movie-images/gladiator.jpg",
		"dark-knight":  "https://your-bucket-name.s3.amazonaws.com/movie-images/dark-knight.jpg",
	}
}
