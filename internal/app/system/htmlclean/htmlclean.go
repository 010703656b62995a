// internal/app/system/htmlclean/htmlclean.go

// Package htmlclean sanitizes HTML arriving from the upstream directory API.
// Club descriptions are authored by club staff in a rich-text editor upstream
// and cannot be trusted; everything served to presentation layers passes
// through here first.
package htmlclean

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// ugcPolicy builds the shared sanitization policy: bluemonday's UGC baseline
// plus tables, which upstream descriptions use for meeting schedules.
func ugcPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowTables()
		p.RequireNoFollowOnLinks(true)
		policy = p
	})
	return policy
}

// Sanitize returns s with unsafe HTML removed. Empty input stays empty.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugcPolicy().Sanitize(s)
}
