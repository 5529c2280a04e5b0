package catalog

import (
	"slices"

	"github.com/google/uuid"
)

// Repository is one catalog entry.
type Repository struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	URL   string    `json:"url"`
	Techs []string  `json:"techs"`
	Likes int       `json:"likes"`
}

// clone returns a copy that shares no memory with r.
func (r Repository) clone() Repository {
	r.Techs = normalizeTechs(r.Techs)
	return r
}

// normalizeTechs copies techs and turns nil into an empty list so records
// always serialize with "techs": [].
func normalizeTechs(techs []string) []string {
	if techs == nil {
		return []string{}
	}
	return slices.Clone(techs)
}
