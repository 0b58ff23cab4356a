package service

// Result caps, matching the bounds the site has always used: public
// listings stay small, admin listings see everything within reason.
const (
	publicListLimit = 100
	adminListLimit  = 1000
)
