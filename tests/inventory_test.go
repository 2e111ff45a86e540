package tests

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

type categoryPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func createCategory(t *testing.T, token string) categoryPayload {
	t.Helper()

	payload := map[string]string{
		"name": fmt.Sprintf("Category %d", time.Now().UnixNano()),
	}

	status, body := doJSON(t, http.MethodPost, "/api/v1/inventory/categories", payload, token)
	if status != http.StatusCreated {
		errEnv := decodeError(t, body)
		t.Fatalf("create category failed: status=%d error=%q", status, errEnv.Error)
	}

	var resp struct {
		Message  string          `json:"message"`
		Category categoryPayload `json:"category"`
	}
	decodeBody(t, body, &resp)

	return resp.Category
}

func TestCategoryCreateForbiddenForUser(t *testing.T) {
	token := userToken(t)

	status, body := doJSON(t, http.MethodPost, "/api/v1/inventory/categories",
		map[string]string{"name": "Forbidden Category"}, token)

	if status != http.StatusForbidden {
		t.Fatalf("expected 403, got %d (body=%s)", status, body)
	}
}

func TestCategoryDuplicateName(t *testing.T) {
	token := adminToken(t)
	category := createCategory(t, token)

	status, body := doJSON(t, http.MethodPost, "/api/v1/inventory/categories",
		map[string]string{"name": category.Name}, token)

	if status != http.StatusConflict {
		t.Fatalf("expected 409, got %d (body=%s)", status, body)
	}
}

func TestItemLifecycle(t *testing.T) {
	token := adminToken(t)
	category := createCategory(t, token)

	// Create
	payload := map[string]any{
		"name":        fmt.Sprintf("Item %d", time.Now().UnixNano()),
		"brand":       "Acme",
		"category_id": category.ID,
		"source":      "purchase",
		"quantity":    12,
		"unit_price":  2.5,
	}
	status, body := doJSON(t, http.MethodPost, "/api/v1/inventory/items", payload, token)
	if status != http.StatusCreated {
		errEnv := decodeError(t, body)
		t.Fatalf("create item failed: status=%d error=%q", status, errEnv.Error)
	}

	var created struct {
		Message string `json:"message"`
		Item    struct {
			ID           string `json:"id"`
			Name         string `json:"name"`
			CategoryName string `json:"category_name"`
			Quantity     int64  `json:"quantity"`
		} `json:"item"`
	}
	decodeBody(t, body, &created)
	if created.Item.CategoryName != category.Name {
		t.Fatalf("expected category name joined, got %q", created.Item.CategoryName)
	}

	// List
	status, body = doJSON(t, http.MethodGet, "/api/v1/inventory/items?category_id="+category.ID, nil, token)
	if status != http.StatusOK {
		t.Fatalf("list items failed: status=%d (body=%s)", status, body)
	}

	var listed struct {
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
		Total int64 `json:"total"`
	}
	decodeBody(t, body, &listed)
	if listed.Total != 1 || len(listed.Items) != 1 || listed.Items[0].ID != created.Item.ID {
		t.Fatalf("expected created item listed, got total=%d items=%v", listed.Total, listed.Items)
	}

	// Soft delete
	status, body = doJSON(t, http.MethodDelete, "/api/v1/inventory/items/"+created.Item.ID, nil, token)
	if status != http.StatusNoContent {
		t.Fatalf("delete item failed: status=%d (body=%s)", status, body)
	}

	// Gone from listing
	status, body = doJSON(t, http.MethodGet, "/api/v1/inventory/items?category_id="+category.ID, nil, token)
	if status != http.StatusOK {
		t.Fatalf("list items failed: status=%d (body=%s)", status, body)
	}
	decodeBody(t, body, &listed)
	if listed.Total != 0 {
		t.Fatalf("expected deleted item excluded, got total=%d", listed.Total)
	}
}

func TestInventorySummary(t *testing.T) {
	token := userToken(t)

	status, body := doJSON(t, http.MethodGet, "/api/v1/inventory/summary", nil, token)
	if status != http.StatusOK {
		t.Fatalf("summary failed: status=%d (body=%s)", status, body)
	}

	var resp struct {
		ItemCount        int64            `json:"item_count"`
		TotalQuantity    int64            `json:"total_quantity"`
		CountPerCategory map[string]int64 `json:"count_per_category"`
	}
	decodeBody(t, body, &resp)
	if resp.ItemCount < 0 {
		t.Fatalf("unexpected item count %d", resp.ItemCount)
	}
}
