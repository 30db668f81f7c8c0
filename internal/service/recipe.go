package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tender-app/backend/internal/dietary"
	"github.com/tender-app/backend/internal/models"
	"github.com/tender-app/backend/internal/types"
)

// DefaultDiscoverLimit is used when the caller passes a non-positive limit.
const DefaultDiscoverLimit = 10

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB

	// rng drives the discovery shuffle. It is injectable so tests can pin
	// the permutation; rand.Rand is not goroutine-safe, hence the mutex.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRecipeService creates a new RecipeService instance. A nil rng gets a
// time-seeded source.
func NewRecipeService(db *gorm.DB, rng *rand.Rand) *RecipeService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RecipeService{db: db, rng: rng}
}

// Discover returns up to limit randomized, dietary-safe recipes the user has
// not yet liked or disliked. The exclusion of already-swiped recipes is
// re-evaluated on every call. A user id that no longer resolves degrades to
// an empty restriction set so the feed stays usable.
func (s *RecipeService) Discover(ctx context.Context, userID uint, limit int) ([]types.RecipeResponse, error) {
	if limit <= 0 {
		limit = DefaultDiscoverLimit
	}

	var userCount int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", userID).Count(&userCount).Error; err != nil {
		return nil, err
	}
	if userCount == 0 {
		logrus.WithField("user_id", userID).Warn("discovery for unresolved user, filtering without restrictions")
	}

	var restrictions []string
	if err := s.db.WithContext(ctx).Model(&models.DietaryRestriction{}).
		Where("user_id = ?", userID).Pluck("label", &restrictions).Error; err != nil {
		return nil, err
	}
	excluded := dietary.ResolveExclusions(restrictions)

	likedIDs := s.db.Model(&models.RecipeLike{}).Select("recipe_id").Where("user_id = ?", userID)
	dislikedIDs := s.db.Model(&models.RecipeDislike{}).Select("recipe_id").Where("user_id = ?", userID)

	var candidates []models.Recipe
	if err := s.db.WithContext(ctx).
		Where("id NOT IN (?)", likedIDs).
		Where("id NOT IN (?)", dislikedIDs).
		Find(&candidates).Error; err != nil {
		return nil, err
	}

	safe := candidates[:0]
	for _, r := range candidates {
		if !violatesWithOverrides(r, restrictions, excluded) {
			safe = append(safe, r)
		}
	}

	s.mu.Lock()
	s.rng.Shuffle(len(safe), func(i, j int) {
		safe[i], safe[j] = safe[j], safe[i]
	})
	s.mu.Unlock()

	if len(safe) > limit {
		safe = safe[:limit]
	}

	return s.formatAll(ctx, safe)
}

// violatesWithOverrides applies the dietary check, first dropping any
// restriction labels the recipe is explicitly excused from.
func violatesWithOverrides(r models.Recipe, restrictions []string, excluded map[string]struct{}) bool {
	if len(r.DietaryOverrides) > 0 {
		overridden := make(map[string]struct{}, len(r.DietaryOverrides))
		for _, label := range r.DietaryOverrides {
			overridden[label] = struct{}{}
		}
		effective := make([]string, 0, len(restrictions))
		for _, label := range restrictions {
			if _, ok := overridden[label]; !ok {
				effective = append(effective, label)
			}
		}
		excluded = dietary.ResolveExclusions(effective)
	}
	return dietary.Violates(r.Ingredients, excluded)
}

// Like inserts a like and removes any dislike for the pair. Repeats are
// no-ops.
func (s *RecipeService) Like(ctx context.Context, userID, recipeID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.RecipeDislike{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.RecipeLike{UserID: userID, RecipeID: recipeID}).Error
	})
}

// Dislike is the mirror of Like.
func (s *RecipeService) Dislike(ctx context.Context, userID, recipeID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(&models.RecipeLike{}).Error; err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.RecipeDislike{UserID: userID, RecipeID: recipeID}).Error
	})
}

// Unlike removes the like only, making the recipe eligible for discovery
// again.
func (s *RecipeService) Unlike(ctx context.Context, userID, recipeID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.RecipeLike{}).Error
}

// CreateRecipe creates a recipe owned by userID. The ingredient list is
// serialized with the newline convention.
func (s *RecipeService) CreateRecipe(ctx context.Context, userID uint, req *types.CreateRecipeRequest) (*types.RecipeResponse, error) {
	recipe := models.Recipe{
		Name:             req.Name,
		Description:      req.Description,
		CookTime:         req.CookTime,
		Servings:         req.Servings,
		Difficulty:       req.Difficulty,
		Cuisine:          req.Cuisine,
		Emoji:            req.Emoji,
		ImageURL:         req.ImageURL,
		SourceURL:        req.SourceURL,
		Ingredients:      dietary.JoinIngredients(req.Ingredients),
		Instructions:     req.Instructions,
		DietaryOverrides: req.DietaryOverrides,
		CreatedBy:        &userID,
	}
	if recipe.Servings == 0 {
		recipe.Servings = 4
	}
	if recipe.Difficulty == "" {
		recipe.Difficulty = "medium"
	}
	if recipe.Emoji == "" {
		recipe.Emoji = "🍽️"
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return s.GetRecipe(ctx, recipe.ID)
}

// GetRecipe retrieves a formatted recipe by ID.
func (s *RecipeService) GetRecipe(ctx context.Context, id uint) (*types.RecipeResponse, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, err
	}
	formatted, err := s.formatAll(ctx, []models.Recipe{recipe})
	if err != nil {
		return nil, err
	}
	return &formatted[0], nil
}

// ListRecipes returns the whole catalog.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]types.RecipeResponse, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return s.formatAll(ctx, recipes)
}

// ListCreatedBy returns the recipes a user submitted, newest first.
func (s *RecipeService) ListCreatedBy(ctx context.Context, userID uint) ([]types.RecipeResponse, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Where("created_by = ?", userID).
		Order("created_at DESC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return s.formatAll(ctx, recipes)
}

// ListLiked returns the user's liked recipes, most recently liked first.
func (s *RecipeService) ListLiked(ctx context.Context, userID uint) ([]types.RecipeResponse, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Joins("JOIN recipe_likes ON recipe_likes.recipe_id = recipes.id").
		Where("recipe_likes.user_id = ?", userID).
		Order("recipe_likes.liked_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return s.formatAll(ctx, recipes)
}

// UpdateRecipe applies the provided fields. Ownership is checked by the
// handler.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uint, req *types.UpdateRecipeRequest) (*types.RecipeResponse, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CookTime != nil {
		updates["cook_time"] = *req.CookTime
	}
	if req.Servings != nil {
		updates["servings"] = *req.Servings
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}
	if req.Cuisine != nil {
		updates["cuisine"] = *req.Cuisine
	}
	if req.Emoji != nil {
		updates["emoji"] = *req.Emoji
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.SourceURL != nil {
		updates["source_url"] = *req.SourceURL
	}
	if req.Ingredients != nil {
		updates["ingredients"] = dietary.JoinIngredients(*req.Ingredients)
	}
	if req.Instructions != nil {
		updates["instructions"] = *req.Instructions
	}
	if req.DietaryOverrides != nil {
		updates["dietary_overrides"] = models.StringList(*req.DietaryOverrides)
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&recipe).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetRecipe(ctx, id)
}

// DeleteRecipe removes a recipe and cascades its like, dislike and meal-plan
// relations in one transaction.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uint) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, id).Error; err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeDislike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.MealPlanEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, id).Error
	})
}

// likeCounts returns the aggregated like count per recipe id.
func (s *RecipeService) likeCounts(ctx context.Context, ids []uint) (map[uint]int64, error) {
	counts := make(map[uint]int64, len(ids))
	if len(ids) == 0 {
		return counts, nil
	}

	var rows []struct {
		RecipeID uint
		Total    int64
	}
	if err := s.db.WithContext(ctx).Model(&models.RecipeLike{}).
		Select("recipe_id, COUNT(*) AS total").
		Where("recipe_id IN ?", ids).
		Group("recipe_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.RecipeID] = row.Total
	}
	return counts, nil
}

func (s *RecipeService) formatAll(ctx context.Context, recipes []models.Recipe) ([]types.RecipeResponse, error) {
	ids := make([]uint, len(recipes))
	for i, r := range recipes {
		ids[i] = r.ID
	}
	counts, err := s.likeCounts(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]types.RecipeResponse, len(recipes))
	for i, r := range recipes {
		overrides := []string(r.DietaryOverrides)
		if overrides == nil {
			overrides = []string{}
		}
		result[i] = types.RecipeResponse{
			ID:               r.ID,
			Name:             r.Name,
			Description:      r.Description,
			CookTime:         r.CookTime,
			Servings:         r.Servings,
			Difficulty:       r.Difficulty,
			Cuisine:          r.Cuisine,
			Emoji:            r.Emoji,
			ImageURL:         r.ImageURL,
			SourceURL:        r.SourceURL,
			Ingredients:      dietary.SplitIngredients(r.Ingredients),
			Instructions:     r.Instructions,
			LikesCount:       counts[r.ID],
			DietaryOverrides: overrides,
			CreatedBy:        r.CreatedBy,
			CreatedAt:        r.CreatedAt,
		}
	}
	return result, nil
}
