package favorite

// ToggleResponse reports the liked state after the flip.
type ToggleResponse struct {
	ListingID int64 `json:"listing_id"`
	Liked     bool  `json:"liked"`
}

type ListResponse struct {
	Liked []int64 `json:"liked"`
}

type CheckResponse struct {
	IsLiked bool `json:"is_liked"`
}
