package model

type Movie struct {
	ID    string
	Title string
	Year  int
	Genre string

	// Slug is the image file stem shared by local and bucket layouts.
	Slug string
}

type MovieRecord struct {
	ID        string
	Title     string
	Year      int
	Genre     string
	Thumbnail string
}

const EmptyThumbnail string = ""

var builtinMovies = []Movie{
	{ID: "shawshank", Title: "The Shawshank Redemption", Year: 1994, Genre: "Drama", Slug: "shawshank-redemption"},
	{ID: "inception", Title: "Inception", Year: 2010, Genre: "Sci-Fi", Slug: "inception"},
	{ID: "interstellar", Title: "Interstellar", Year: 2014, Genre: "Sci-Fi", Slug: "interstellar"},
	{ID: "fight-club", Title: "Fight Club", Year: 1999, Genre: "Drama", Slug: "fight-club"},
	{ID: "gladiator", Title: "Gladiator", Year: 2000, Genre: "Action", Slug: "gladiator"},
	{ID: "dark-knight", Title: "Dark Knight", Year: 2008, Genre: "Action", Slug: "dark-knight"},
}

// BuiltinMovies returns the catalog in presentation order.
func BuiltinMovies() []Movie {
	movies := make([]Movie, len(builtinMovies))
	copy(movies, builtinMovies)
	return movies
}

func (m Movie) ToRecord(thumbnail string) MovieRecord {
	return MovieRecord{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		Genre:     m.Genre,
		Thumbnail: thumbnail,
	}
}
