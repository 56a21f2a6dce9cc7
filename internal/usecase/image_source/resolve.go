package usecase_image_source

import "github.com/adithyagarapati/movie-analyzer/internal/model"

// Resolve picks the image url for movieID from state. Remote mode falls back to
// the local entry when the remote mapping has none; local mode never looks at
// the remote mapping.
func Resolve(state model.ImageSourceState, movieID string) (string, bool) {
	if state.Mode == model.RemoteMode {
		if url, ok := state.Remote[movieID]; ok && url != "" {
			return url, true
		}
	}

	url, ok := state.Local[movieID]
	if !ok || url == "" {
		return model.EmptyThumbnail, false
	}
	return url, true
}
