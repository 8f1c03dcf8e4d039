package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, orderController *OrderController, productController *ProductController) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	// Restaurant-scoped routes
	router.HandleFunc("/restaurants/{id}/orders", orderController.ListOrders).Methods("GET")
	router.HandleFunc("/restaurants/{id}/orders", orderController.CreateOrder).Methods("POST")
	router.HandleFunc("/restaurants/{id}/orders/stats", orderController.OrderStats).Methods("GET")
	router.HandleFunc("/restaurants/{id}/products", productController.ListProducts).Methods("GET")
	router.HandleFunc("/restaurants/{id}/categories", productController.ListCategories).Methods("GET")

	// Order routes
	router.HandleFunc("/orders/{id}", orderController.GetOrder).Methods("GET")
	router.HandleFunc("/orders/{id}", orderController.UpdateOrder).Methods("PUT")
	router.HandleFunc("/orders/{id}", orderController.DeleteOrder).Methods("DELETE")
	router.HandleFunc("/orders/{id}/status", orderController.UpdateStatus).Methods("PATCH")
	router.HandleFunc("/orders/{id}/whatsapp", orderController.WhatsAppSummary).Methods("GET")
}
