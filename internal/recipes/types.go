package recipes

// Recipe is a saved recipe as returned by the server. The ID is assigned
// on create; a zero ID never appears in server responses.
type Recipe struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// Draft is the request body for create and update calls. It carries no ID;
// the server assigns one on create and the URL names one on update.
type Draft struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// DraftOf returns the recipe's fields as an editable draft.
func DraftOf(r Recipe) Draft {
	ingredients := make([]string, len(r.Ingredients))
	copy(ingredients, r.Ingredients)
	return Draft{
		Title:        r.Title,
		Ingredients:  ingredients,
		Instructions: r.Instructions,
	}
}
