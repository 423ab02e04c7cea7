package handlers

import (
	"net/http/httptest"
	"testing"
)

func TestParsePageLimit(t *testing.T) {
	cases := []struct {
		name  string
		query string
		page  int
		limit int
		ok    bool
	}{
		{"дефолты", "", 1, 10, true},
		{"явные значения", "page=3&limit=25", 3, 25, true},
		{"только page", "page=2", 2, 10, true},
		{"нецелый page", "page=abc", 0, 0, false},
		{"нецелый limit", "limit=1.5", 0, 0, false},
		{"нулевой page", "page=0", 0, 0, false},
		{"отрицательный limit", "limit=-5", 0, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/?"+tc.query, nil)
			page, limit, ok := parsePageLimit(r)
			if page != tc.page || limit != tc.limit || ok != tc.ok {
				t.Errorf("получили (%d, %d, %v), ожидали (%d, %d, %v)", page, limit, ok, tc.page, tc.limit, tc.ok)
			}
		})
	}
}
