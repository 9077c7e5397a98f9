package web

import (
	"net/http"
	"strconv"

	"inventory-tracker/internal/app"
	"inventory-tracker/internal/core"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// envelope is the uniform success response: a status message plus a data
// payload; mutations add the count of rows affected.
type envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Changes *int64 `json:"changes,omitempty"`
}

// itemBody is the partial item accepted by create and update. Pointer fields
// record which keys were present in the request; absent keys keep their stored
// value on update and default to zero/empty on create.
type itemBody struct {
	Name          *string          `json:"name,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Unit          *string          `json:"unit,omitempty"`
	AvgDailyUsage *decimal.Decimal `json:"avgDailyUsage,omitempty"`
	MaxDailyUsage *decimal.Decimal `json:"maxDailyUsage,omitempty"`
	LeadTimeDays  *decimal.Decimal `json:"leadTime,omitempty"`
	CurrentStock  *decimal.Decimal `json:"currentStock,omitempty"`
}

func (b itemBody) toRequest() app.SaveItemRequest {
	return app.SaveItemRequest{
		Name:          b.Name,
		Category:      b.Category,
		Unit:          b.Unit,
		AvgDailyUsage: b.AvgDailyUsage,
		MaxDailyUsage: b.MaxDailyUsage,
		LeadTimeDays:  b.LeadTimeDays,
		CurrentStock:  b.CurrentStock,
	}
}

// itemID extracts and parses the {id} URL parameter.
func itemID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// listItems handles GET /api/items.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListItems(r.Context())
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	items := result.Items
	if items == nil {
		items = []core.Item{}
	}
	writeJSON(w, http.StatusOK, envelope{Message: "ok", Data: items})
}

// createItem handles POST /api/items. Nothing is required: an empty body
// creates a blank row with a fresh id.
func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var body itemBody
	if !decodeJSON(w, r, &body) {
		return
	}

	result, err := h.svc.CreateItem(r.Context(), body.toRequest())
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, envelope{Message: "created", Data: result.Item})
}

// updateItem handles PUT /api/items/{id}. Only fields present in the body are
// applied; an unknown id is a zero-changes success, not an error.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, "invalid item id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	var body itemBody
	if !decodeJSON(w, r, &body) {
		return
	}

	changes, err := h.svc.UpdateItem(r.Context(), id, body.toRequest())
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Message: "updated", Data: body, Changes: &changes})
}

// deleteItem handles DELETE /api/items/{id}. An unknown id is a zero-changes
// success, not an error.
func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := itemID(r)
	if err != nil {
		writeError(w, r, "invalid item id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	changes, err := h.svc.DeleteItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, envelope{Message: "deleted", Changes: &changes})
}
