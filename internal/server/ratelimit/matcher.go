package ratelimit

import "strings"

// Rule is a per-endpoint limit. A Path ending in "/" matches by prefix.
type Rule struct {
	Method            string
	Path              string
	RequestsPerMinute int
	Burst             int
}

// Unlimited marks a rule that is never throttled.
const Unlimited = -1

// DefaultRules throttle the upload endpoints harder than reads and exempt the health check.
func DefaultRules() []Rule {
	return []Rule{
		{Method: "GET", Path: "/health", RequestsPerMinute: Unlimited},
		{Method: "POST", Path: "/v1/analyze", RequestsPerMinute: 20, Burst: 5},
		{Method: "POST", Path: "/v1/extract", RequestsPerMinute: 30, Burst: 5},
		{Method: "DELETE", Path: "/v1/resumes/", RequestsPerMinute: 30, Burst: 5},
	}
}

// Match returns the rule for a request, preferring exact paths over prefixes, or nil.
func Match(method, path string, rules []Rule) *Rule {
	for i := range rules {
		if rules[i].Method == method && rules[i].Path == path {
			return &rules[i]
		}
	}
	for i := range rules {
		r := &rules[i]
		if r.Method == method && strings.HasSuffix(r.Path, "/") && strings.HasPrefix(path, r.Path) {
			return r
		}
	}
	return nil
}
