package v1

// Tutorial is the wire form of one tutorial record.
type Tutorial struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

// TutorialRequest is the payload for create and update operations. The
// identifier is never part of the payload; it is assigned by the server at
// creation and taken from the path on update.
type TutorialRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

// Error is the JSON error envelope for all non-2xx API responses.
type Error struct {
	Error string `json:"error"`
}
