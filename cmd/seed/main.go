package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tdiagne/resto-inventory/config"
	"github.com/tdiagne/resto-inventory/internal/database"
	"github.com/tdiagne/resto-inventory/internal/models"
	"github.com/tdiagne/resto-inventory/internal/service"
)

// Seeds the database with a small sample catalog: three suppliers, six
// ingredients, three recipes and three restaurant wares. Existing rows are
// removed first, so running it twice leaves a single copy of the fixtures.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	ctx := context.Background()
	if err := clear(db); err != nil {
		log.Fatalf("Failed to clear existing data: %v", err)
	}
	if err := seed(ctx, db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Seeding complete")
}

func clear(db *gorm.DB) error {
	for _, model := range []interface{}{
		&models.RecipeIngredient{},
		&models.Recipe{},
		&models.Ingredient{},
		&models.RestaurantWare{},
		&models.Supplier{},
	} {
		if err := db.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	supplierSvc := service.NewSupplierService(db)
	ingredientSvc := service.NewIngredientService(db)
	recipeSvc := service.NewRecipeService(db)
	wareSvc := service.NewWareService(db)

	suppliers := []*models.Supplier{
		{Name: "SIAGRO", Address: "Av. Malick Sy, Dakar", Tel: "+221 33 849 56 66"},
		{Name: "Agroline", Address: "km 11, Rte de Rufisque, Dakar 11000", Tel: "+221 33 879 12 00"},
		{Name: "SENICO", Address: "Bargny", Tel: "+221 33 879 18 03"},
	}
	for _, s := range suppliers {
		if _, err := supplierSvc.Create(ctx, s); err != nil {
			return err
		}
		log.Printf("Added supplier: %s", s.Name)
	}

	ingredients := []*models.Ingredient{
		{Name: "tomato", Type: "fruit", Cost: 10, Quantity: 100, Critical: 25, SupplierID: &suppliers[0].ID},
		{Name: "lettuce", Type: "fruit", Cost: 12, Quantity: 100, Critical: 25, SupplierID: &suppliers[0].ID},
		{Name: "onions", Type: "fruit", Cost: 6, Quantity: 100, Critical: 25, SupplierID: &suppliers[0].ID},
		{Name: "bread", Type: "bread", Cost: 6, Quantity: 100, Critical: 25, SupplierID: &suppliers[2].ID},
		{Name: "beef", Type: "meat", Cost: 6, Quantity: 100, Critical: 25, SupplierID: &suppliers[1].ID},
		{Name: "egg", Type: "poultry", Cost: 6, Quantity: 100, Critical: 25, SupplierID: &suppliers[1].ID},
	}
	for _, i := range ingredients {
		if _, err := ingredientSvc.Create(ctx, i); err != nil {
			return err
		}
		log.Printf("Added ingredient: %s", i.Name)
	}

	recipes := []struct {
		recipe      models.Recipe
		ingredients []int
	}{
		{models.Recipe{Name: "Salad", PrepTime: "10 min", Price: 24}, []int{0, 1, 2}},
		{models.Recipe{Name: "Omelet", PrepTime: "6 min", Price: 17}, []int{0, 1, 2, 5}},
		{models.Recipe{Name: "Hamburger", PrepTime: "15 min", Price: 29}, []int{0, 1, 2, 3, 4, 5}},
	}
	for _, r := range recipes {
		ids := make([]uuid.UUID, 0, len(r.ingredients))
		for _, idx := range r.ingredients {
			ids = append(ids, ingredients[idx].ID)
		}
		recipe := r.recipe
		if _, err := recipeSvc.Create(ctx, &recipe, ids); err != nil {
			return err
		}
		log.Printf("Added recipe: %s", recipe.Name)
	}

	wares := []*models.RestaurantWare{
		{Name: "fork", Cost: 10, Stock: 40, Critical: 20, SupplierID: &suppliers[2].ID},
		{Name: "knife", Cost: 10, Stock: 40, Critical: 20, SupplierID: &suppliers[0].ID},
		{Name: "plate", Cost: 15, Stock: 30, Critical: 20, SupplierID: &suppliers[1].ID},
	}
	for _, w := range wares {
		if _, err := wareSvc.Create(ctx, w); err != nil {
			return err
		}
		log.Printf("Added restaurant ware: %s", w.Name)
	}

	return nil
}
