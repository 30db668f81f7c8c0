// Package dietary maps dietary-restriction labels to disqualifying
// ingredient keywords and checks recipe ingredient text against them.
//
// Restrictions are modeled as keyword exclusion sets rather than positive
// ingredient tagging: recipes store free-text ingredient strings with no
// structured nutrition data, so substring matching against a curated keyword
// list is the only filtering mechanism available. False positives are
// accepted (e.g. "breadcrumbs" matches the gluten-free keyword "bread").
package dietary

import (
	"strings"
)

// exclusions is the fixed restriction-label vocabulary. The keyword lists are
// data, not derived; vegan is vegetarian's list plus dairy/egg/honey items.
var exclusions = map[string][]string{
	"gluten-free": {
		"flour", "bread", "pasta", "spaghetti", "macaroni", "panko", "breadcrumbs",
		"tortillas", "tortilla", "tostada shells", "ramen noodles", "phyllo", "puff pastry",
		"wontons", "gnocchi", "rolls", "buns", "noodles",
	},
	"dairy-free": {
		"cheese", "milk", "cream", "butter", "yogurt", "cheddar", "mozzarella",
		"parmesan", "pecorino", "gruyere", "feta", "paneer", "ghee", "bechamel",
	},
	"vegetarian": {
		"chicken", "beef", "pork", "shrimp", "fish sauce", "clams", "duck",
		"sausage", "bacon", "spam", "ground beef", "pork shoulder", "pork belly",
		"steak", "sausage meat", "chicken breast", "chicken thighs", "duck legs",
		"duck fat",
	},
	"vegan": {
		"chicken", "beef", "pork", "shrimp", "fish sauce", "clams", "duck",
		"sausage", "bacon", "spam", "ground beef", "pork shoulder", "pork belly",
		"steak", "sausage meat", "chicken breast", "chicken thighs", "duck legs",
		"duck fat", "egg", "egg wash", "cheese", "milk", "cream", "butter", "yogurt",
		"cheddar", "mozzarella", "parmesan", "pecorino", "gruyere", "feta", "paneer",
		"ghee", "bechamel", "honey", "dashi",
	},
	"keto": {
		"pasta", "spaghetti", "macaroni", "rice", "basmati rice", "cooked rice",
		"bread", "potatoes", "noodles", "flour", "sugar", "tortillas", "tortilla",
		"tostada shells", "ramen noodles", "gnocchi", "grits", "rolls", "buns", "beans",
		"refried beans",
	},
	"halal": {
		"pork", "bacon", "spam", "pork shoulder", "pork belly", "sausage meat",
		"red wine", "wine", "mirin",
	},
	"kosher": {
		"pork", "bacon", "spam", "pork shoulder", "pork belly", "sausage meat",
		"shrimp", "clams",
	},
}

// ResolveExclusions returns the union of the keyword lists for the given
// restriction labels. Unknown labels are ignored; an empty or all-unknown
// input yields an empty set. Never fails.
func ResolveExclusions(restrictions []string) map[string]struct{} {
	excluded := make(map[string]struct{})
	for _, r := range restrictions {
		for _, kw := range exclusions[r] {
			excluded[kw] = struct{}{}
		}
	}
	return excluded
}

// Violates reports whether any ingredient token contains an excluded keyword
// as a substring, case-insensitively. An empty exclusion set never violates.
func Violates(ingredientText string, excluded map[string]struct{}) bool {
	if len(excluded) == 0 {
		return false
	}
	for _, ingredient := range SplitIngredients(strings.ToLower(ingredientText)) {
		for kw := range excluded {
			if strings.Contains(ingredient, kw) {
				return true
			}
		}
	}
	return false
}

// SplitIngredients expands raw ingredient text into trimmed items. Newline
// separation wins when present, otherwise commas; items keep their order and
// empties are dropped.
func SplitIngredients(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var parts []string
	if strings.Contains(raw, "\n") {
		parts = strings.FieldsFunc(raw, func(r rune) bool { return r == '\n' || r == '\r' })
	} else {
		parts = strings.Split(raw, ",")
	}
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

// JoinIngredients serializes an ingredient list using the newline convention.
func JoinIngredients(items []string) string {
	return strings.Join(items, "\n")
}

// Labels returns the fixed restriction vocabulary.
func Labels() []string {
	labels := make([]string, 0, len(exclusions))
	for l := range exclusions {
		labels = append(labels, l)
	}
	return labels
}
