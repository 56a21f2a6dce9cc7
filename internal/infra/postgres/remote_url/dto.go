package infra_postgres_remote_url

import "github.com/adithyagarapati/movie-analyzer/internal/model"

type RemoteURLDB struct {
	MovieID string `db:"movie_id"`
	URL     string `db:"url"`
}

func ToDomain(rows []RemoteURLDB) model.URLMapping {
	mapping := make(model.URLMapping, len(rows))
	for _, r := range rows {
		mapping[r.MovieID] = r.URL
	}
	return mapping
}
