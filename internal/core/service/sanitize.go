package service

import "github.com/microcosm-cc/bluemonday"

// ugcPolicy scrubs operator-entered rich text (briefings, notes, comments)
// before it is stored. The console renders these fields as HTML, so script
// and event-handler injection must be stripped on the way in.
var ugcPolicy = bluemonday.UGCPolicy()

func sanitizeUGC(s string) string {
	return ugcPolicy.Sanitize(s)
}
