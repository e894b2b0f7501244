package state

import (
	"testing"

	"github.com/kterry/ladle/internal/recipes"
)

func sampleRecipes() []recipes.Recipe {
	return []recipes.Recipe{
		{ID: 1, Title: "Pancakes", Ingredients: []string{"Flour", "Milk", "Eggs"}},
		{ID: 2, Title: "Omelette", Ingredients: []string{"Eggs", "Butter"}},
		{ID: 3, Title: "Green Tea", Ingredients: []string{"Water", "Tea leaves"}},
	}
}

func TestFilter_EmptyQueryReturnsAllInOrder(t *testing.T) {
	list := sampleRecipes()

	for _, q := range []string{"", "   ", "\t"} {
		got := Filter(list, q)
		if len(got) != len(list) {
			t.Fatalf("Filter(%q) len = %d, want %d", q, len(got), len(list))
		}
		for i := range got {
			if got[i].ID != list[i].ID {
				t.Fatalf("Filter(%q) order changed at %d: %#v", q, i, got)
			}
		}
	}
}

func TestFilter_TitleMatchIsCaseInsensitive(t *testing.T) {
	got := Filter(sampleRecipes(), "PANCAKE")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("Filter(PANCAKE) = %#v, want only Pancakes", got)
	}
}

func TestFilter_IngredientMatch(t *testing.T) {
	got := Filter(sampleRecipes(), "eggs")
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("Filter(eggs) = %#v, want Pancakes then Omelette", got)
	}
}

func TestFilter_NoMatch(t *testing.T) {
	got := Filter(sampleRecipes(), "anchovies")
	if len(got) != 0 {
		t.Fatalf("Filter(anchovies) = %#v, want empty", got)
	}
}

func TestFilter_MatchedRecipesContainQuery(t *testing.T) {
	list := sampleRecipes()
	for _, r := range Filter(list, "tea") {
		if !Matches(r, "tea") {
			t.Fatalf("filtered recipe %#v does not match query", r)
		}
	}
}
