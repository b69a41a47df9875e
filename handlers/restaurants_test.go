package handlers_test

import (
	"net/http"
	"testing"

	"food-delivery-api/models"
)

func validRestaurantBody(managerID uint) map[string]interface{} {
	return map[string]interface{}{
		"name":                  "Krusty Burger",
		"address":               "5 Food Ct",
		"area":                  "Downtown",
		"city":                  "Springfield",
		"state":                 "IL",
		"rating":                4.2,
		"average_delivery_time": 30,
		"average_cost_per_two":  25.0,
		"manager_id":            managerID,
	}
}

func TestCreateRestaurant(t *testing.T) {
	r, db, store := setupRouter(t)
	admin := seedUser(t, db, "admin@x.com", "secret1", models.RoleAdmin)
	manager := seedUser(t, db, "m@x.com", "secret1", models.RoleManager)
	token, _ := store.Issue(admin.ID)

	w := do(r, http.MethodPost, "/restaurants", token.Token, validRestaurantBody(manager.ID))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	restaurant, _ := decode(t, w)["restaurant"].(map[string]interface{})
	if restaurant["name"] != "Krusty Burger" {
		t.Errorf("restaurant payload %v", restaurant)
	}
}

func TestCreateRestaurantValidation(t *testing.T) {
	r, db, store := setupRouter(t)
	admin := seedUser(t, db, "admin@x.com", "secret1", models.RoleAdmin)
	manager := seedUser(t, db, "m@x.com", "secret1", models.RoleManager)
	token, _ := store.Issue(admin.ID)

	body := validRestaurantBody(manager.ID)
	delete(body, "name")
	w := do(r, http.MethodPost, "/restaurants", token.Token, body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", w.Code)
	}
	if decode(t, w)["error"] != "Name can't be blank" {
		t.Errorf("body %s", w.Body.String())
	}

	body = validRestaurantBody(manager.ID)
	body["rating"] = 6.0
	w = do(r, http.MethodPost, "/restaurants", token.Token, body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status %d, want 422", w.Code)
	}
	if decode(t, w)["error"] != "Rating is not included in the list" {
		t.Errorf("body %s", w.Body.String())
	}
}

func TestGetRestaurantNotFound(t *testing.T) {
	r, db, store := setupRouter(t)
	admin := seedUser(t, db, "admin@x.com", "secret1", models.RoleAdmin)
	token, _ := store.Issue(admin.ID)

	w := do(r, http.MethodGet, "/restaurants/42", token.Token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", w.Code)
	}
	if decode(t, w)["error"] != "restaurant is not available" {
		t.Errorf("body %s", w.Body.String())
	}
}

func TestListRestaurantsRequiresAuth(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := do(r, http.MethodGet, "/restaurants", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}
}

func TestUpdateRestaurantMergesFields(t *testing.T) {
	r, db, store := setupRouter(t)
	admin := seedUser(t, db, "admin@x.com", "secret1", models.RoleAdmin)
	manager := seedUser(t, db, "m@x.com", "secret1", models.RoleManager)
	token, _ := store.Issue(admin.ID)

	restaurant := models.Restaurant{
		Name: "Krusty Burger", Address: "5 Food Ct", Area: "Downtown",
		City: "Springfield", State: "IL", Rating: 4.2,
		AverageDeliveryTime: 30, AverageCostPerTwo: 25, ManagerID: manager.ID,
	}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	w := do(r, http.MethodPut, "/restaurants/"+itoa(restaurant.ID), token.Token, map[string]interface{}{
		"rating": 3.5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	out, _ := decode(t, w)["restaurant"].(map[string]interface{})
	if out["rating"] != 3.5 {
		t.Errorf("rating not updated: %v", out["rating"])
	}
	if out["name"] != "Krusty Burger" {
		t.Errorf("unsent field was clobbered: %v", out["name"])
	}

	w = do(r, http.MethodPut, "/restaurants/999", token.Token, map[string]interface{}{"rating": 3.0})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id: status %d, want 404", w.Code)
	}
}
