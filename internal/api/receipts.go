package api

import (
	"net/http"

	"hoteldesk/m/internal/service"
	"hoteldesk/m/internal/store"
)

type receiptRequest struct {
	WaiterID int64   `json:"waiter_id"`
	OrderIDs []int64 `json:"orders"`
	Printed  bool    `json:"printed"`
	Settled  bool    `json:"settled"`
}

func (h *Handler) createReceipt(w http.ResponseWriter, r *http.Request) {
	if !h.requireStaff(w, r) {
		return
	}
	var req receiptRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.WaiterID == 0 {
		req.WaiterID = callerID(r)
	}
	receipt, err := h.svc.CreateReceipt(r.Context(), service.CreateReceiptParams{
		WaiterID: req.WaiterID,
		OrderIDs: req.OrderIDs,
		Printed:  req.Printed,
		Settled:  req.Settled,
	})
	if err != nil {
		h.respondServiceError(w, r, "create_receipt", err)
		return
	}
	respondJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) listReceipts(w http.ResponseWriter, r *http.Request) {
	if !h.requireStaff(w, r) {
		return
	}
	waiterID, ok := queryID(r, "waiter_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid waiter_id")
		return
	}
	receipts, err := h.svc.ListReceipts(r.Context(), store.ReceiptFilter{WaiterID: waiterID})
	if err != nil {
		h.respondServiceError(w, r, "list_receipts", err)
		return
	}
	respondJSON(w, http.StatusOK, receipts)
}

func (h *Handler) getReceipt(w http.ResponseWriter, r *http.Request) {
	if !h.requireStaff(w, r) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid receipt id")
		return
	}
	receipt, err := h.svc.GetReceipt(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "get_receipt", err)
		return
	}
	respondJSON(w, http.StatusOK, receipt)
}

func (h *Handler) attachOrders(w http.ResponseWriter, r *http.Request) {
	if !h.requireStaff(w, r) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid receipt id")
		return
	}
	var req struct {
		OrderIDs []int64 `json:"orders"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	receipt, err := h.svc.AttachOrders(r.Context(), id, req.OrderIDs)
	if err != nil {
		h.respondServiceError(w, r, "attach_orders", err)
		return
	}
	respondJSON(w, http.StatusOK, receipt)
}

func (h *Handler) detachOrder(w http.ResponseWriter, r *http.Request) {
	if !h.requireStaff(w, r) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid receipt id")
		return
	}
	orderID, ok := urlID(r, "orderID")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid order id")
		return
	}
	receipt, err := h.svc.DetachOrder(r.Context(), id, orderID)
	if err != nil {
		h.respondServiceError(w, r, "detach_order", err)
		return
	}
	respondJSON(w, http.StatusOK, receipt)
}

func (h *Handler) printReceipt(w http.ResponseWriter, r *http.Request) {
	if !h.requireStaff(w, r) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid receipt id")
		return
	}
	receipt, err := h.svc.SetPrinted(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "print_receipt", err)
		return
	}
	respondJSON(w, http.StatusOK, receipt)
}

func (h *Handler) settleReceipt(w http.ResponseWriter, r *http.Request) {
	if !h.requireStaff(w, r) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid receipt id")
		return
	}
	receipt, err := h.svc.SetSettled(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "settle_receipt", err)
		return
	}
	respondJSON(w, http.StatusOK, receipt)
}
