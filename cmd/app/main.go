package main

import (
	"github.com/adithyagarapati/movie-analyzer/internal/app"
	"github.com/adithyagarapati/movie-analyzer/internal/config"
)

func main() {
	app.Go(config.Load())
}
