package api

import (
	"net/http"
	"strconv"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/service"
	"hoteldesk/m/internal/store"
)

// Menu handlers

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	f := store.MenuFilter{Category: r.URL.Query().Get("category")}
	if raw := r.URL.Query().Get("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "available must be true or false")
			return
		}
		f.AvailableOnly = available
	}
	items, err := h.svc.ListMenuItems(r.Context(), f)
	if err != nil {
		h.respondServiceError(w, r, "list_menu", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}
	item, err := h.svc.GetMenuItem(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "get_menu_item", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin, domain.RoleManager) {
		return
	}
	var req service.MenuItemInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.svc.CreateMenuItem(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, "create_menu_item", err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin, domain.RoleManager) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}
	var req service.MenuItemInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.svc.UpdateMenuItem(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, "update_menu_item", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin, domain.RoleManager) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid menu item id")
		return
	}
	if err := h.svc.DeleteMenuItem(r.Context(), id); err != nil {
		h.respondServiceError(w, r, "delete_menu_item", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Inventory handlers

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	h.inventory(w, r, false)
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	h.inventory(w, r, true)
}

func (h *Handler) inventory(w http.ResponseWriter, r *http.Request, lowOnly bool) {
	if !h.requireStaff(w, r) {
		return
	}
	items, err := h.svc.ListInventory(r.Context(), lowOnly)
	if err != nil {
		h.respondServiceError(w, r, "list_inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (h *Handler) createInventory(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin) {
		return
	}
	var req service.InventoryInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.svc.CreateInventoryItem(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, "create_inventory", err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateInventory(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}
	var req service.InventoryInput
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	item, err := h.svc.UpdateInventoryItem(r.Context(), id, req)
	if err != nil {
		h.respondServiceError(w, r, "update_inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteInventory(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, domain.RoleAdmin) {
		return
	}
	id, ok := urlID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}
	if err := h.svc.DeleteInventoryItem(r.Context(), id); err != nil {
		h.respondServiceError(w, r, "delete_inventory", err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
