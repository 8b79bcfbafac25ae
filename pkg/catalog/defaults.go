package catalog

var defaultSubstitutes = map[string][]string{
	"butter":        {"margarine", "oil", "coconut oil"},
	"milk":          {"almond milk", "soy milk", "oat milk"},
	"egg":           {"flax egg", "chia egg", "applesauce"},
	"sugar":         {"honey", "maple syrup", "brown sugar"},
	"flour":         {"almond flour", "coconut flour", "oat flour"},
	"onion":         {"shallot", "leek", "green onion"},
	"garlic":        {"garlic powder", "shallot"},
	"chicken":       {"turkey", "tofu"},
	"beef":          {"ground turkey", "mushroom", "lentil"},
	"rice":          {"quinoa", "cauliflower rice", "couscous"},
	"pasta":         {"zucchini noodle", "rice noodle"},
	"cream":         {"milk", "coconut cream", "greek yogurt"},
	"sour cream":    {"greek yogurt", "plain yogurt"},
	"lemon":         {"lime", "vinegar"},
	"tomato":        {"tomato paste", "red pepper"},
	"cheese":        {"nutritional yeast"},
	"buttermilk":    {"milk", "yogurt"},
	"breadcrumbs":   {"crushed crackers", "oats"},
	"vegetable oil": {"olive oil", "canola oil", "butter"},
}

var defaultCategories = []Category{
	{Name: "cheese", Members: []string{"cheddar", "mozzarella", "parmesan", "swiss", "feta", "gouda", "ricotta"}},
	{Name: "herbs", Members: []string{"basil", "oregano", "thyme", "rosemary", "parsley", "cilantro", "dill"}},
	{Name: "citrus", Members: []string{"lemon", "lime", "orange", "grapefruit"}},
	{Name: "alliums", Members: []string{"onion", "shallot", "scallion", "leek", "green onion"}},
	{Name: "leafy greens", Members: []string{"spinach", "kale", "lettuce", "arugula", "chard"}},
	{Name: "pasta", Members: []string{"spaghetti", "penne", "fettuccine", "macaroni", "linguine"}},
	{Name: "cooking oils", Members: []string{"olive oil", "vegetable oil", "canola oil", "sunflower oil"}},
	{Name: "beans", Members: []string{"black beans", "kidney beans", "chickpeas", "pinto beans", "lentils"}},
	{Name: "poultry", Members: []string{"chicken", "turkey", "duck"}},
	{Name: "berries", Members: []string{"strawberry", "blueberry", "raspberry", "blackberry"}},
}

// Default returns the built-in substitute and category tables
func Default() *Catalog {
	return New(defaultSubstitutes, defaultCategories)
}
