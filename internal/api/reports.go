package api

import (
	"net/http"
	"strings"
	"time"

	"hoteldesk/m/domain"
	"hoteldesk/m/internal/store"
)

// todaySales returns today's report for waiter_id, or for the caller when omitted.
func (h *Handler) todaySales(w http.ResponseWriter, r *http.Request) {
	if !h.requireStaff(w, r) {
		return
	}
	waiterID, ok := queryID(r, "waiter_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid waiter_id")
		return
	}
	id := callerID(r)
	if waiterID != nil {
		id = *waiterID
	}
	report, err := h.svc.TodayReport(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, "today_sales", err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (h *Handler) salesReports(w http.ResponseWriter, r *http.Request) {
	if !h.requireStaff(w, r) {
		return
	}
	waiterID, ok := queryID(r, "waiter_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid waiter_id")
		return
	}
	f := store.SalesFilter{WaiterID: waiterID}

	for name, dest := range map[string]*string{"start_date": &f.From, "end_date": &f.To} {
		v := strings.TrimSpace(r.URL.Query().Get(name))
		if v == "" {
			continue
		}
		if _, err := time.Parse(domain.DateLayout, v); err != nil {
			respondError(w, http.StatusBadRequest, name+" must be in YYYY-MM-DD format")
			return
		}
		*dest = v
	}

	reports, err := h.svc.ListReports(r.Context(), f)
	if err != nil {
		h.respondServiceError(w, r, "sales_reports", err)
		return
	}
	respondJSON(w, http.StatusOK, reports)
}
