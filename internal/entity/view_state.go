package entity

// ViewState is what the gallery shows to one session: the viewed month and the
// months known to contain images, newest first.
type ViewState struct {
	Current   Month   `json:"current"`
	Available []Month `json:"available"`
}
