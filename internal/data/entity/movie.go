package entity

import "github.com/google/uuid"

type Movie struct {
	BaseSimple
	CategoryID  uuid.UUID `db:"category_id"`
	Name        string    `db:"name"`
	TrailerLink *string   `db:"trailer_link"`
	SongLink    *string   `db:"song_link"`
	OTTLink     *string   `db:"ott_link"`
	Description *string   `db:"description"`
}
