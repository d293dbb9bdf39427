package httpapi

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"overcooked-cart/cart-svc/internal/domain"
	"overcooked-cart/cart-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Carts service.CartServiceInterface
	Menu  service.MenuServiceInterface
}

func NewHandler(cartSvc service.CartServiceInterface, menuSvc service.MenuServiceInterface) *Handler {
	return &Handler{Carts: cartSvc, Menu: menuSvc}
}

type lineRequest struct {
	Key      domain.LineKey `json:"key"`
	Quantity int            `json:"quantity"`
}

type restaurantRequest struct {
	RestaurantID int `json:"restaurant_id"`
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/carts", h.createCart).Methods("POST")
	r.HandleFunc("/api/carts/{sessionId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/carts/{sessionId}", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/carts/{sessionId}/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/carts/{sessionId}/items/{dishId}", h.removeItem).Methods("DELETE")
	r.HandleFunc("/api/carts/{sessionId}/lines", h.updateQuantity).Methods("PATCH")
	r.HandleFunc("/api/carts/{sessionId}/lines", h.removeLine).Methods("DELETE")
	r.HandleFunc("/api/carts/{sessionId}/restaurant", h.setRestaurant).Methods("PUT")
	r.HandleFunc("/api/carts/{sessionId}/checkout", h.checkout).Methods("POST")

	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/restaurants", h.getRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes", h.getRestaurantDishes).Methods("GET")
	r.HandleFunc("/api/restaurants/{restaurantId}/dishes/{dishId}", h.getDish).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "cart-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) createCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": h.Carts.NewSession()})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Carts.Get(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.Carts.Clear(r.Context(), mux.Vars(r)["sessionId"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req service.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.RestaurantID <= 0 || req.DishID <= 0 {
		http.Error(w, "restaurant_id and dish_id are required", http.StatusBadRequest)
		return
	}

	view, err := h.Carts.AddItem(r.Context(), mux.Vars(r)["sessionId"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dishID, err := strconv.Atoi(vars["dishId"])
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	view, err := h.Carts.RemoveItem(r.Context(), vars["sessionId"], dishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.Carts.UpdateQuantity(r.Context(), mux.Vars(r)["sessionId"], req.Key, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) removeLine(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.Carts.RemoveLine(r.Context(), mux.Vars(r)["sessionId"], req.Key)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) setRestaurant(w http.ResponseWriter, r *http.Request) {
	var req restaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	view, err := h.Carts.SetRestaurant(r.Context(), mux.Vars(r)["sessionId"], req.RestaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Carts.Checkout(r.Context(), mux.Vars(r)["sessionId"], req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	order, err := h.Carts.Order(r.Context(), orderID)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to load order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	qrCode, err := h.Carts.OrderQRCode(r.Context(), orderID)
	if errors.Is(err, sql.ErrNoRows) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to load QR code", http.StatusInternalServerError)
		return
	}
	if len(qrCode) == 0 {
		http.Error(w, "QR code not available", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) getRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Menu.Restaurants(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) getRestaurantDishes(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	items, err := h.Menu.Menu(r.Context(), restaurantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getDish(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	restaurantID, err := strconv.Atoi(vars["restaurantId"])
	if err != nil {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}
	dishID, err := strconv.Atoi(vars["dishId"])
	if err != nil {
		http.Error(w, "Invalid dish ID", http.StatusBadRequest)
		return
	}

	item, err := h.Menu.MenuItem(r.Context(), restaurantID, dishID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidPortionSize), errors.Is(err, service.ErrInvalidCustomization):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrMenuItemNotFound):
		http.Error(w, "Menu item not found", http.StatusNotFound)
	case errors.Is(err, service.ErrEmptyCart):
		http.Error(w, "Cart is empty", http.StatusConflict)
	case errors.Is(err, service.ErrCartUnavailable):
		http.Error(w, "Cart storage unavailable, try again", http.StatusServiceUnavailable)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
