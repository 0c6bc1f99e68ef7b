// Package catalog assigns display categories to menus by name.
package catalog

import (
	"strings"

	"github.com/Cheertaboi/storefront-service/internal/models"
)

const (
	// All selects every category.
	All = "전체"
	// Other is assigned when no rule matches.
	Other = "기타"
)

type rule struct {
	keywords []string
	category string
}

// First match wins, so 김밥 is checked before the generic 밥 rule.
var rules = []rule{
	{[]string{"김밥"}, "김밥류"},
	{[]string{"라면"}, "면류"},
	{[]string{"떡볶이", "순대"}, "분식류"},
	{[]string{"밥", "덮밥"}, "밥류"},
	{[]string{"국", "탕"}, "국류"},
	{[]string{"양꼬치"}, "양꼬치"},
	{[]string{"양고기"}, "양고기"},
	{[]string{"샤브샤브"}, "샤브샤브"},
	{[]string{"훠궈"}, "훠궈"},
}

// Categorize returns the display category for a menu name.
func Categorize(name string) string {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(name, kw) {
				return r.category
			}
		}
	}
	return Other
}

// Apply returns a copy of menus with Category set from each name.
func Apply(menus []models.Menu) []models.Menu {
	out := make([]models.Menu, len(menus))
	for i, m := range menus {
		m.Category = Categorize(m.Name)
		out[i] = m
	}
	return out
}

// Categories lists All followed by each category present, in first-seen order.
func Categories(menus []models.Menu) []string {
	out := []string{All}
	seen := map[string]bool{}
	for _, m := range menus {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	return out
}

// Filter keeps menus in category. An empty category or All keeps everything.
func Filter(menus []models.Menu, category string) []models.Menu {
	if category == "" || category == All {
		return menus
	}
	out := make([]models.Menu, 0, len(menus))
	for _, m := range menus {
		if m.Category == category {
			out = append(out, m)
		}
	}
	return out
}
