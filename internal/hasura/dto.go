package hasura

import "github.com/mmcdole/watchthis/internal/domain"

// showDTO mirrors a row of the shows table as returned by GetShows
type showDTO struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	Platforms  string `json:"platforms"`
	IsCurrent  bool   `json:"isCurrent"`
	IsArchived bool   `json:"isArchived"`
}

type getShowsResponse struct {
	Shows []showDTO `json:"shows"`
}

type setIsCurrentResponse struct {
	UpdateShows struct {
		AffectedRows int `json:"affected_rows"`
	} `json:"update_shows"`
}

type archiveShowResponse struct {
	// Null when no row has the given primary key
	UpdateShowsByPK *struct {
		ID int `json:"id"`
	} `json:"update_shows_by_pk"`
}

type addShowResponse struct {
	InsertShowsOne *struct {
		ID int `json:"id"`
	} `json:"insert_shows_one"`
}

// mapShows converts response rows to domain shows
func mapShows(rows []showDTO) []domain.Show {
	shows := make([]domain.Show, len(rows))
	for i, r := range rows {
		shows[i] = domain.Show{
			ID:         r.ID,
			Title:      r.Title,
			Platforms:  r.Platforms,
			IsCurrent:  r.IsCurrent,
			IsArchived: r.IsArchived,
		}
	}
	return shows
}
