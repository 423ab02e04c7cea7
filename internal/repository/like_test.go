package repository

import "testing"

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"100%", `100\%`},
		{"image_url", `image\_url`},
		{`back\slash`, `back\\slash`},
		{`%_\`, `\%\_\\`},
		{"", ""},
	}
	for _, tc := range cases {
		if got := escapeLike(tc.in); got != tc.want {
			t.Errorf("escapeLike(%q) = %q, ожидали %q", tc.in, got, tc.want)
		}
	}
}

func TestSearchCondition(t *testing.T) {
	cases := []struct {
		target string
		argN   int
		want   string
	}{
		{SearchTargetTitle, 2, "title ILIKE $2"},
		{SearchTargetBody, 1, "body ILIKE $1"},
		{SearchTargetArticle, 3, "(title ILIKE $3 OR body ILIKE $3)"},
	}
	for _, tc := range cases {
		if got := searchCondition(tc.target, tc.argN); got != tc.want {
			t.Errorf("searchCondition(%q, %d) = %q, ожидали %q", tc.target, tc.argN, got, tc.want)
		}
	}
}
