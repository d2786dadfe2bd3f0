package model

import "time"

// Project is a showcased portfolio entry. Screenshots holds up to three
// relative paths (e.g. "uploads/<name>") under the static asset root, in the
// order the upload slots were submitted. Projects are created and deleted,
// never edited in place.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Screenshots []string  `json:"screenshots"`
	CreatedAt   time.Time `json:"created_at"`
}
