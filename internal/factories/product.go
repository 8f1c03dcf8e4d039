package factories

import (
	"math/rand"

	"github.com/Tahashy/Panel-Administrativo/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

type ProductFactory struct{}

var menuCategories = []string{"Burgers", "Pizzas", "Chicken", "Salads", "Drinks", "Desserts"}

var menuItems = map[string][]string{
	"Burgers":  {"Classic Cheeseburger", "Double Bacon Burger", "Veggie Burger", "Mushroom Swiss Burger"},
	"Pizzas":   {"Margherita", "Pepperoni", "Hawaiian", "Veggie Supreme"},
	"Chicken":  {"Grilled Chicken", "Crispy Wings", "Chicken Tenders", "BBQ Chicken"},
	"Salads":   {"Caesar Salad", "Greek Salad", "Cobb Salad", "Quinoa Salad"},
	"Drinks":   {"Chocolate Shake", "Vanilla Shake", "Fresh Lemonade", "Iced Tea"},
	"Desserts": {"Apple Pie", "Brownie", "Cheesecake", "Churros"},
}

var commonAddOns = []models.AddOn{
	{Name: "Extra cheese", Price: 1.50},
	{Name: "Bacon", Price: 2.00},
	{Name: "Fried egg", Price: 1.00},
	{Name: "Avocado", Price: 1.80},
	{Name: "Extra sauce", Price: 0.50},
}

func (pf *ProductFactory) CreateCategory(restaurantID, name string) *models.Category {
	return &models.Category{
		ID:           cuid.New(),
		RestaurantID: restaurantID,
		Name:         name,
	}
}

func (pf *ProductFactory) Categories(restaurantID string) []*models.Category {
	categories := make([]*models.Category, 0, len(menuCategories))
	for _, name := range menuCategories {
		categories = append(categories, pf.CreateCategory(restaurantID, name))
	}
	return categories
}

func (pf *ProductFactory) CreateProduct(restaurantID string, category *models.Category) *models.Product {
	names := menuItems[category.Name]
	name := "Special of the Day"
	if len(names) > 0 {
		name = names[rand.Intn(len(names))]
	}

	return &models.Product{
		ID:           cuid.New(),
		RestaurantID: restaurantID,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Name:         name,
		Description:  fake.Lorem().Sentence(8),
		Price:        fake.Float64(2, 5, 30),
		Available:    true,
		AddOns:       randomAddOns(),
	}
}

// randomAddOns gives roughly half the catalog an add-on selection.
func randomAddOns() []models.AddOn {
	if rand.Intn(2) == 0 {
		return nil
	}
	count := rand.Intn(3) + 1
	addOns := make([]models.AddOn, 0, count)
	for _, i := range rand.Perm(len(commonAddOns))[:count] {
		addOns = append(addOns, commonAddOns[i])
	}
	return addOns
}
