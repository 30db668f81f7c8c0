package database

import (
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tender-app/backend/internal/models"
)

// SeedRecipes inserts the starter catalog when the recipe table is empty.
// Seed recipes carry a nil CreatedBy to mark them as catalog data rather
// than user submissions.
func SeedRecipes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	recipes := sampleRecipes()
	if err := db.Create(&recipes).Error; err != nil {
		return err
	}
	logrus.WithField("count", len(recipes)).Info("seeded starter recipes")
	return nil
}

func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		{
			Name: "Pasta Carbonara", Description: "Classic Italian pasta with eggs, cheese, and pancetta",
			CookTime: 25, Servings: 4, Difficulty: "medium", Cuisine: "italian", Emoji: "🍝",
			Ingredients:  "350g spaghetti,100g pancetta,3 eggs,50g parmesan,2 cloves garlic,black pepper",
			Instructions: "1. Boil spaghetti in salted water until al dente. 2. Fry pancetta with garlic until crisp. 3. Beat eggs with grated parmesan and pepper. 4. Drain pasta, reserve some water. 5. Toss hot pasta with pancetta, remove from heat, stir in egg mixture with splash of pasta water until creamy.",
		},
		{
			Name: "Chicken Tacos", Description: "Flavorful Mexican tacos with seasoned chicken",
			CookTime: 20, Servings: 4, Difficulty: "easy", Cuisine: "mexican", Emoji: "🌮",
			Ingredients:  "500g chicken breast,1 tbsp oil,2 tsp taco seasoning,8 taco shells,lettuce,tomato,cheese,sour cream",
			Instructions: "1. Slice chicken and toss with seasoning. 2. Cook in skillet with oil over medium-high for 6–8 minutes. 3. Warm taco shells. 4. Fill shells with chicken and toppings.",
		},
		{
			Name: "Caesar Salad", Description: "Fresh romaine with creamy Caesar dressing",
			CookTime: 15, Servings: 2, Difficulty: "easy", Cuisine: "american", Emoji: "🥗",
			Ingredients:  "2 romaine hearts,50g parmesan,1 cup croutons,1/3 cup caesar dressing,1 lemon",
			Instructions: "1. Chop romaine and place in bowl. 2. Add croutons and grated parmesan. 3. Toss with dressing and a squeeze of lemon. 4. Serve immediately.",
		},
		{
			Name: "Beef Stir Fry", Description: "Quick and healthy Asian-inspired dish",
			CookTime: 30, Servings: 4, Difficulty: "medium", Cuisine: "chinese", Emoji: "🥘",
			Ingredients:  "500g beef strips,1 bell pepper,1 cup broccoli,2 tbsp soy sauce,2 cloves garlic,1 tsp ginger,1 tbsp oil",
			Instructions: "1. Heat oil in wok. 2. Stir fry beef for 3–4 minutes. 3. Add garlic and ginger for 30 seconds. 4. Add vegetables and cook 4–5 minutes. 5. Add soy sauce and toss to coat.",
		},
		{
			Name: "Margherita Pizza", Description: "Classic Italian pizza with fresh ingredients",
			CookTime: 45, Servings: 4, Difficulty: "medium", Cuisine: "italian", Emoji: "🍕",
			Ingredients:  "1 pizza dough,1/2 cup tomato sauce,200g mozzarella,fresh basil,1 tbsp olive oil",
			Instructions: "1. Preheat oven to 450F. 2. Roll dough and place on tray. 3. Spread sauce, add mozzarella. 4. Bake 10–12 minutes until crust is golden. 5. Top with basil and drizzle olive oil.",
		},
		{
			Name: "Sushi Rolls", Description: "Homemade maki rolls with fresh fish",
			CookTime: 40, Servings: 4, Difficulty: "hard", Cuisine: "japanese", Emoji: "🍱",
			Ingredients:  "2 cups sushi rice,2 tbsp rice vinegar,4 nori sheets,200g salmon,1 cucumber,1 avocado",
			Instructions: "1. Cook and season rice with vinegar. 2. Place nori on mat and spread rice thinly. 3. Add salmon, cucumber, avocado. 4. Roll tightly and slice into pieces.",
		},
		{
			Name: "Butter Chicken", Description: "Creamy Indian curry with tender chicken",
			CookTime: 35, Servings: 4, Difficulty: "medium", Cuisine: "indian", Emoji: "🍛",
			Ingredients:  "600g chicken thighs,2 tbsp butter,1 cup crushed tomatoes,1/2 cup cream,1 tbsp garam masala,2 cloves garlic",
			Instructions: "1. Brown chicken in butter. 2. Add garlic and spices and cook 1 minute. 3. Add tomatoes and simmer 15 minutes. 4. Stir in cream and simmer 5 more minutes. 5. Serve with rice.",
		},
		{
			Name: "Greek Gyros", Description: "Mediterranean wrap with tzatziki sauce",
			CookTime: 25, Servings: 4, Difficulty: "medium", Cuisine: "greek", Emoji: "🥙",
			Ingredients:  "500g chicken or lamb,4 pita breads,1 cup tzatziki,1 tomato,1 onion,lettuce",
			Instructions: "1. Season and grill meat until cooked through. 2. Slice thinly. 3. Warm pitas. 4. Fill with meat, veggies, and tzatziki.",
		},
		{
			Name: "Pad Thai", Description: "Classic Thai noodle dish",
			CookTime: 30, Servings: 4, Difficulty: "medium", Cuisine: "thai", Emoji: "🍜",
			Ingredients:  "200g rice noodles,200g shrimp,2 eggs,1 cup bean sprouts,1/4 cup peanuts,1 lime,3 tbsp pad thai sauce",
			Instructions: "1. Soak noodles in warm water. 2. Stir fry shrimp, then scramble eggs. 3. Add noodles and sauce. 4. Toss in bean sprouts. 5. Serve topped with peanuts and lime.",
		},
		{
			Name: "French Onion Soup", Description: "Rich soup with melted cheese topping",
			CookTime: 60, Servings: 4, Difficulty: "medium", Cuisine: "french", Emoji: "🍲",
			Ingredients:  "4 onions,2 tbsp butter,1L beef broth,4 slices bread,100g gruyere,1 tsp thyme",
			Instructions: "1. Slice onions and cook in butter over low heat 30 minutes until caramelized. 2. Add broth and thyme, simmer 20 minutes. 3. Pour into bowls, top with bread and cheese. 4. Broil until cheese melts.",
		},
		{
			Name: "Bibimbap", Description: "Korean rice bowl with vegetables and egg",
			CookTime: 35, Servings: 2, Difficulty: "medium", Cuisine: "korean", Emoji: "🍚",
			Ingredients:  "2 cups rice,200g beef,spinach,carrots,zucchini,2 eggs,gochujang",
			Instructions: "1. Cook rice. 2. Sauté vegetables and beef separately. 3. Fry eggs sunny-side up. 4. Arrange everything over rice and serve with gochujang.",
		},
		{
			Name: "Fish and Chips", Description: "British classic with crispy battered fish",
			CookTime: 40, Servings: 4, Difficulty: "medium", Cuisine: "british", Emoji: "🐟",
			Ingredients:  "4 cod fillets,4 potatoes,1 cup flour,1 cup beer,oil,salt",
			Instructions: "1. Cut potatoes into fries and fry until golden. 2. Mix flour and beer for batter. 3. Dip fish in batter and fry until crisp. 4. Serve hot with fries.",
		},
		{
			Name: "Ratatouille", Description: "French vegetable stew with tomato and herbs",
			CookTime: 45, Servings: 4, Difficulty: "medium", Cuisine: "french", Emoji: "🍆",
			Ingredients:  "1 eggplant,2 zucchini,3 roma tomatoes,1/2 onion,4 cloves garlic,400g crushed tomatoes,olive oil,herbs",
			Instructions: "1. Preheat oven to 375F. 2. Sauté onion and garlic in olive oil. 3. Add crushed tomatoes and simmer 15 minutes. 4. Pour sauce into baking dish, layer sliced vegetables. 5. Cover and bake 30 minutes.",
		},
		{
			Name: "Pho", Description: "Vietnamese beef noodle soup with aromatic broth",
			CookTime: 90, Servings: 4, Difficulty: "hard", Cuisine: "vietnamese", Emoji: "🍲",
			Ingredients:  "1 onion,1 piece ginger,8 cups beef stock,rice noodles,200g beef,spices,fish sauce",
			Instructions: "1. Char onion and ginger. 2. Simmer with spices and stock 30–40 minutes. 3. Cook rice noodles separately. 4. Add sliced beef to hot broth. 5. Serve over noodles with herbs.",
		},
		{
			Name: "Mac and Cheese", Description: "Classic baked macaroni and cheese",
			CookTime: 40, Servings: 4, Difficulty: "easy", Cuisine: "american", Emoji: "🧀",
			Ingredients:  "450g macaroni,6 tbsp butter,5 tbsp flour,2.5 cups milk,2 cups shredded cheese,1/2 cup breadcrumbs",
			Instructions: "1. Preheat oven to 400F. 2. Boil pasta until al dente. 3. Make roux with butter and flour, whisk in milk. 4. Stir in cheese until melted. 5. Combine with pasta, top with breadcrumbs, bake 15–20 minutes.",
		},
	}
}
