package api

import (
	"log"
	"net/http"

	"github.com/Tahashy/Panel-Administrativo/internal/repositories"
	"github.com/gorilla/mux"
)

// ProductController handles catalog reads for the order-creation flow.
type ProductController struct {
	Products repositories.ProductRepository
}

func NewProductController(products repositories.ProductRepository) *ProductController {
	return &ProductController{Products: products}
}

func (pc *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]

	products, err := pc.Products.ListAvailable(r.Context(), restaurantID)
	if err != nil {
		log.Printf("Error loading products for restaurant %s: %v", restaurantID, err)
		respondError(w, http.StatusInternalServerError, "Failed to load products")
		return
	}
	respondJSON(w, http.StatusOK, products)
}

func (pc *ProductController) ListCategories(w http.ResponseWriter, r *http.Request) {
	restaurantID := mux.Vars(r)["id"]

	categories, err := pc.Products.ListCategories(r.Context(), restaurantID)
	if err != nil {
		log.Printf("Error loading categories for restaurant %s: %v", restaurantID, err)
		respondError(w, http.StatusInternalServerError, "Failed to load categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}
