package request

type MovieRequest struct {
	CategoryID  string  `json:"category_id" validate:"required,uuid_any"`
	Name        string  `json:"name" validate:"required"`
	TrailerLink *string `json:"trailer_link,omitempty"`
	SongLink    *string `json:"song_link,omitempty"`
	OTTLink     *string `json:"ott_link,omitempty"`
	Description *string `json:"description,omitempty"`
}
