package models

// Wire identifiers. Distinct types keep a tag id from ever being passed where
// a passport id belongs; all are hex ObjectID strings except TagID, which is
// the physical tag's own identifier.
type (
	PassportID string
	ProjectID  string
	TagID      string
	CheckinID  string
)
