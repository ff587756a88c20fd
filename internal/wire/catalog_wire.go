package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Reference data is read-only over HTTP
func wireCatalog(r chi.Router, catalogHandler *adaptor.CatalogHandler) {
	r.Get("/genres", catalogHandler.GetGenres)
	r.Get("/directors", catalogHandler.GetDirectors)
}
