package recipes

import "github.com/colin477/floating-kraken-dash-sub000/pkg/models"

func minutes(n int) *int { return &n }

// starterRecipes seeds an empty recipe book
func starterRecipes() []models.Recipe {
	return []models.Recipe{
		{
			Name:                "Vegetable Omelette",
			Cuisine:             "French",
			Ingredients:         []string{"eggs", "milk", "cheddar", "spinach", "onion"},
			Instructions:        []string{"Whisk eggs with milk", "Soften onion and spinach", "Cook the omelette and fold in cheese"},
			Difficulty:          models.DifficultyEasy,
			PrepTime:            minutes(5),
			CookTime:            minutes(10),
			Servings:            1,
			MealTypes:           []string{"breakfast", "lunch"},
			DietaryRestrictions: []string{"vegetarian", "gluten_free"},
		},
		{
			Name:                "Fried Rice",
			Cuisine:             "Chinese",
			Ingredients:         []string{"rice", "eggs", "green onion", "soy sauce", "carrot", "peas"},
			Instructions:        []string{"Scramble the eggs", "Stir-fry vegetables", "Add rice and soy sauce"},
			Difficulty:          models.DifficultyEasy,
			PrepTime:            minutes(10),
			CookTime:            minutes(10),
			Servings:            2,
			MealTypes:           []string{"lunch", "dinner"},
			DietaryRestrictions: []string{"vegetarian", "dairy_free"},
		},
		{
			Name:         "Chicken Stir-Fry",
			Cuisine:      "Asian",
			Ingredients:  []string{"chicken", "bell pepper", "broccoli", "garlic", "soy sauce", "rice"},
			Instructions: []string{"Cook the rice", "Sear the chicken", "Stir-fry vegetables with garlic and soy sauce"},
			Difficulty:   models.DifficultyMedium,
			PrepTime:     minutes(15),
			CookTime:     minutes(15),
			Servings:     3,
			MealTypes:    []string{"dinner"},
		},
		{
			Name:                "Pasta Primavera",
			Cuisine:             "Italian",
			Ingredients:         []string{"pasta", "zucchini", "tomatoes", "garlic", "olive oil", "parmesan", "basil"},
			Instructions:        []string{"Boil the pasta", "Saute vegetables in olive oil", "Toss with parmesan and basil"},
			Difficulty:          models.DifficultyEasy,
			PrepTime:            minutes(10),
			CookTime:            minutes(20),
			Servings:            4,
			MealTypes:           []string{"lunch", "dinner"},
			DietaryRestrictions: []string{"vegetarian"},
		},
		{
			Name:                "Lentil Soup",
			Cuisine:             "Middle Eastern",
			Ingredients:         []string{"lentils", "onion", "carrot", "celery", "garlic", "cumin", "vegetable stock"},
			Instructions:        []string{"Soften onion, carrot and celery", "Add lentils, cumin and stock", "Simmer until tender"},
			Difficulty:          models.DifficultyEasy,
			PrepTime:            minutes(15),
			CookTime:            minutes(40),
			Servings:            4,
			MealTypes:           []string{"lunch", "dinner"},
			DietaryRestrictions: []string{"vegan", "vegetarian", "gluten_free", "dairy_free"},
		},
		{
			Name:         "Beef Stroganoff",
			Cuisine:      "Russian",
			Ingredients:  []string{"beef", "mushrooms", "onion", "sour cream", "butter", "pasta"},
			Instructions: []string{"Sear the beef", "Cook mushrooms and onion in butter", "Stir in sour cream and serve over pasta"},
			Difficulty:   models.DifficultyMedium,
			PrepTime:     minutes(20),
			CookTime:     minutes(30),
			Servings:     4,
			MealTypes:    []string{"dinner"},
		},
		{
			Name:         "Borscht",
			Cuisine:      "Russian",
			Ingredients:  []string{"beets", "cabbage", "potatoes", "carrot", "onion", "tomato paste", "beef stock", "sour cream"},
			Instructions: []string{"Simmer beets in stock", "Add vegetables", "Serve with sour cream"},
			Difficulty:   models.DifficultyHard,
			PrepTime:     minutes(30),
			CookTime:     minutes(90),
			Servings:     6,
			MealTypes:    []string{"lunch", "dinner"},
		},
	}
}
