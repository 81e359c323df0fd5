package api

import (
	"net/http"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/service"
	"hoteldesk/m/internal/store"
)

type orderRequest struct {
	CustomerID int64                   `json:"customer_id"`
	Items      []service.LineItemInput `json:"items"`
}

// createOrder places an order for the caller. Staff may place one on behalf of a customer.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	customerID := callerID(r)
	if req.CustomerID != 0 && req.CustomerID != customerID {
		if !h.requireStaff(w, r) {
			return
		}
		customerID = req.CustomerID
	}
	order, err := h.svc.CreateOrder(r.Context(), customerID, req.Items)
	if err != nil {
		h.respondServiceError(w, r, "create_order", err)
		return
	}
	respondJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	var f store.OrderFilter
	customerID, ok := queryID(r, "customer_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid customer_id")
		return
	}
	receiptID, ok := queryID(r, "receipt_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid receipt_id")
		return
	}
	f.CustomerID = customerID
	f.ReceiptID = receiptID
	f.Unconsolidated = r.URL.Query().Get("unconsolidated") == "true"
	if !domain.IsStaff(callerRole(r)) {
		id := callerID(r)
		f.CustomerID = &id
	}

	orders, err := h.svc.ListOrders(r.Context(), f)
	if err != nil {
		h.respondServiceError(w, r, "list_orders", err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, ok := h.visibleOrder(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, order)
}

type lineItemRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int64 `json:"quantity"`
}

func (h *Handler) addLineItem(w http.ResponseWriter, r *http.Request) {
	order, ok := h.visibleOrder(w, r)
	if !ok {
		return
	}
	var req lineItemRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}
	updated, err := h.svc.AddLineItem(r.Context(), order.ID, req.MenuItemID, req.Quantity)
	if err != nil {
		h.respondServiceError(w, r, "add_line_item", err)
		return
	}
	respondJSON(w, http.StatusCreated, updated)
}

func (h *Handler) removeLineItem(w http.ResponseWriter, r *http.Request) {
	order, ok := h.visibleOrder(w, r)
	if !ok {
		return
	}
	itemID, ok := urlID(r, "itemID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid line item id")
		return
	}
	updated, err := h.svc.RemoveLineItem(r.Context(), order.ID, itemID)
	if err != nil {
		h.respondServiceError(w, r, "remove_line_item", err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

func (h *Handler) deleteLineItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid line item id")
		return
	}
	order, err := h.svc.DeleteLineItem(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "delete_line_item", err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	if !h.requireStaff(w, r) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	var req struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	order, err := h.svc.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.respondServiceError(w, r, "update_status", err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// visibleOrder loads the order named in the URL. Customers only see their own orders;
// anything else looks like it does not exist.
func (h *Handler) visibleOrder(w http.ResponseWriter, r *http.Request) (domain.Order, bool) {
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return domain.Order{}, false
	}
	order, err := h.svc.GetOrder(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "get_order", err)
		return domain.Order{}, false
	}
	if !domain.IsStaff(callerRole(r)) && order.CustomerID != callerID(r) {
		respondError(w, http.StatusNotFound, "order not found")
		return domain.Order{}, false
	}
	return order, true
}
