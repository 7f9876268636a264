// internal/handlers/buyback.go
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/ammerola/buyback-be/internal/core/domain"
	"github.com/ammerola/buyback-be/internal/core/ports"
)

const apiV1 = "/api/v1"

// BuybackHandler handles the buyback workflow HTTP requests
type BuybackHandler struct {
	service    ports.BuybackService
	tasks      ports.TaskEnqueuer
	translator ports.Translator
	logger     *slog.Logger
}

// NewBuybackHandler creates a new buyback handler
func NewBuybackHandler(
	service ports.BuybackService,
	tasks ports.TaskEnqueuer,
	translator ports.Translator,
	logger *slog.Logger,
) *BuybackHandler {
	return &BuybackHandler{
		service:    service,
		tasks:      tasks,
		translator: translator,
		logger:     logger.With(slog.String("handler", "buyback")),
	}
}

// RegisterRoutes registers the buyback endpoints using method-specific patterns
func (h *BuybackHandler) RegisterRoutes(mux *http.ServeMux) {
	// Audit requests
	mux.HandleFunc("POST "+apiV1+"/audit-requests", h.CreateAuditRequest)
	mux.HandleFunc("GET "+apiV1+"/audit-requests/{id}", h.GetAuditRequest)
	mux.HandleFunc("PATCH "+apiV1+"/audit-requests/{id}", h.UpdateAuditRequest)
	mux.HandleFunc("PUT "+apiV1+"/audit-requests/{id}/convert", h.ConvertAuditRequest)
	mux.HandleFunc("POST "+apiV1+"/audit-requests/{id}/items", h.AddAuditRequestItem)
	mux.HandleFunc("PATCH "+apiV1+"/audit-request-items/{id}", h.UpdateAuditRequestItem)
	mux.HandleFunc("DELETE "+apiV1+"/audit-request-items/{id}", h.DeleteAuditRequestItem)

	// Audit items
	mux.HandleFunc("POST "+apiV1+"/audit-items", h.CreateAuditItem)
	mux.HandleFunc("GET "+apiV1+"/audit-items/{id}", h.GetAuditItem)
	mux.HandleFunc("PATCH "+apiV1+"/audit-items/{id}", h.UpdateAuditItem)
	mux.HandleFunc("DELETE "+apiV1+"/audit-items/{id}", h.DeleteAuditItem)
	mux.HandleFunc("PUT "+apiV1+"/audit-items/{id}/transfer-repair", h.TransferToRepair)

	// Buyback offers
	mux.HandleFunc("POST "+apiV1+"/accounts/{id}/buyback-offer", h.AddAuditItemsToNewOffer)
	mux.HandleFunc("PATCH "+apiV1+"/accounts/{id}/buyback-offer/{offerId}", h.AddAuditItemsToOffer)
	mux.HandleFunc("POST "+apiV1+"/buyback-offers", h.CreateBuybackOffer)
	mux.HandleFunc("GET "+apiV1+"/buyback-offers/{id}", h.GetBuybackOffer)
	mux.HandleFunc("PATCH "+apiV1+"/buyback-offers/{id}", h.UpdateBuybackOffer)
	mux.HandleFunc("PATCH "+apiV1+"/buyback-offers/{id}/apply-price-rule", h.ApplyPriceRule)

	// Selectable audit items
	for _, scope := range []struct {
		prefix string
		of     func(uuid.UUID) ports.OfferScope
	}{
		{apiV1 + "/accounts/{id}/buyback-offer", accountScope},
		{apiV1 + "/buyback-offers/{id}", offerScope},
	} {
		mux.HandleFunc("GET "+scope.prefix+"/available-products", h.listAvailable(scope.of, h.availableProducts))
		mux.HandleFunc("GET "+scope.prefix+"/available-conditions", h.listAvailable(scope.of, h.availableConditions))
		mux.HandleFunc("GET "+scope.prefix+"/available-supplier-order-numbers", h.listAvailable(scope.of, h.availableSupplierOrderNumbers))
		mux.HandleFunc("GET "+scope.prefix+"/available-audits", h.listAvailable(scope.of, h.availableAudits))
	}

	// Devices and repairs
	mux.HandleFunc("PATCH "+apiV1+"/devices/{id}", h.UpdateDevice)
	mux.HandleFunc("DELETE "+apiV1+"/repairs/{id}", h.DeleteRepair)
	mux.HandleFunc("POST "+apiV1+"/repairs/prices", h.SyncRepairPrices)

	// Maintenance
	mux.HandleFunc("POST "+apiV1+"/aggregates/reconcile", h.ReconcileAggregates)
}

// CreateAuditRequest handles POST /api/v1/audit-requests
func (h *BuybackHandler) CreateAuditRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateAuditRequestRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	request, err := h.service.CreateAuditRequest(r.Context(), req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "audit request created",
		slog.String("audit_request_id", request.ID.String()))
	h.respondJSON(w, http.StatusCreated, request)
}

// GetAuditRequest handles GET /api/v1/audit-requests/{id}
func (h *BuybackHandler) GetAuditRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	request, err := h.service.GetAuditRequest(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, request)
}

// UpdateAuditRequest handles PATCH /api/v1/audit-requests/{id}
func (h *BuybackHandler) UpdateAuditRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateAuditRequestRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	request, err := h.service.UpdateAuditRequest(r.Context(), id, req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, request)
}

// ConvertAuditRequest handles PUT /api/v1/audit-requests/{id}/convert
func (h *BuybackHandler) ConvertAuditRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	request, err := h.service.ConvertAuditRequest(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "audit request converted",
		slog.String("audit_request_id", id.String()))
	h.respondJSON(w, http.StatusOK, request)
}

// AddAuditRequestItem handles POST /api/v1/audit-requests/{id}/items
func (h *BuybackHandler) AddAuditRequestItem(w http.ResponseWriter, r *http.Request) {
	requestID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req AuditRequestItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	item, err := h.service.AddAuditRequestItem(r.Context(), requestID, req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, item)
}

// UpdateAuditRequestItem handles PATCH /api/v1/audit-request-items/{id}
func (h *BuybackHandler) UpdateAuditRequestItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateAuditRequestItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	item, err := h.service.UpdateAuditRequestItem(r.Context(), id, req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

// DeleteAuditRequestItem handles DELETE /api/v1/audit-request-items/{id}
func (h *BuybackHandler) DeleteAuditRequestItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteAuditRequestItem(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateAuditItem handles POST /api/v1/audit-items
func (h *BuybackHandler) CreateAuditItem(w http.ResponseWriter, r *http.Request) {
	var req CreateAuditItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	item, err := h.service.CreateAuditItem(r.Context(), req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "audit item created",
		slog.String("audit_item_id", item.ID.String()),
		slog.String("audit_request_id", req.AuditRequestID.String()))
	h.respondJSON(w, http.StatusCreated, item)
}

// GetAuditItem handles GET /api/v1/audit-items/{id}
func (h *BuybackHandler) GetAuditItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.service.GetAuditItem(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

// UpdateAuditItem handles PATCH /api/v1/audit-items/{id}
func (h *BuybackHandler) UpdateAuditItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateAuditItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	item, err := h.service.UpdateAuditItem(r.Context(), id, req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, item)
}

// DeleteAuditItem handles DELETE /api/v1/audit-items/{id}
func (h *BuybackHandler) DeleteAuditItem(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteAuditItem(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "audit item deleted",
		slog.String("audit_item_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// TransferToRepair handles PUT /api/v1/audit-items/{id}/transfer-repair
func (h *BuybackHandler) TransferToRepair(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req RepairTransferRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}

	repair, err := h.service.TransferToRepair(r.Context(), id, req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "audit item transferred to repair",
		slog.String("audit_item_id", id.String()),
		slog.String("repair_id", repair.ID.String()))
	h.respondJSON(w, http.StatusOK, repair)
}

// AddAuditItemsToNewOffer handles POST /api/v1/accounts/{id}/buyback-offer
func (h *BuybackHandler) AddAuditItemsToNewOffer(w http.ResponseWriter, r *http.Request) {
	h.addAuditItemsToOffer(w, r, false)
}

// AddAuditItemsToOffer handles PATCH /api/v1/accounts/{id}/buyback-offer/{offerId}
func (h *BuybackHandler) AddAuditItemsToOffer(w http.ResponseWriter, r *http.Request) {
	h.addAuditItemsToOffer(w, r, true)
}

func (h *BuybackHandler) addAuditItemsToOffer(w http.ResponseWriter, r *http.Request, existing bool) {
	accountID, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var offerID *uuid.UUID
	if existing {
		id, ok := h.pathID(w, r, "offerId")
		if !ok {
			return
		}
		offerID = &id
	}

	var req OfferSelectionRequest
	if r.ContentLength != 0 && !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	offer, err := h.service.AddAuditItemsToOffer(r.Context(), accountID, offerID, req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "audit items added to offer",
		slog.String("account_id", accountID.String()),
		slog.String("buyback_offer_id", offer.ID.String()),
		slog.Int("number_of_items", offer.NumberOfItems))

	status := http.StatusOK
	if !existing {
		status = http.StatusCreated
	}
	h.respondJSON(w, status, offer)
}

// CreateBuybackOffer handles POST /api/v1/buyback-offers
func (h *BuybackHandler) CreateBuybackOffer(w http.ResponseWriter, r *http.Request) {
	var req CreateBuybackOfferRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	offer, err := h.service.CreateBuybackOffer(r.Context(), req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "buyback offer created",
		slog.String("buyback_offer_id", offer.ID.String()))
	h.respondJSON(w, http.StatusCreated, offer)
}

// GetBuybackOffer handles GET /api/v1/buyback-offers/{id}
func (h *BuybackHandler) GetBuybackOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	offer, err := h.service.GetBuybackOffer(r.Context(), id)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, offer)
}

// UpdateBuybackOffer handles PATCH /api/v1/buyback-offers/{id}
func (h *BuybackHandler) UpdateBuybackOffer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateBuybackOfferRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	offer, err := h.service.UpdateBuybackOffer(r.Context(), id, req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, offer)
}

// ApplyPriceRule handles PATCH /api/v1/buyback-offers/{id}/apply-price-rule
func (h *BuybackHandler) ApplyPriceRule(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	selection, err := selectionFromQuery(r.URL.Query())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	var req PriceRuleRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	offer, err := h.service.ApplyPriceRule(r.Context(), id, selection, req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, offer)
}

type availableLister func(ctx context.Context, scope ports.OfferScope, selection ports.OfferSelection) (ListResponse, error)

func accountScope(id uuid.UUID) ports.OfferScope { return ports.OfferScope{AccountID: &id} }

func offerScope(id uuid.UUID) ports.OfferScope { return ports.OfferScope{OfferID: &id} }

// listAvailable serves the available-* listings of an account or an offer.
// The selection comes from the same query parameters as apply-price-rule.
func (h *BuybackHandler) listAvailable(scopeOf func(uuid.UUID) ports.OfferScope, list availableLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.pathID(w, r, "id")
		if !ok {
			return
		}
		selection, err := selectionFromQuery(r.URL.Query())
		if err != nil {
			h.respondError(w, r, err)
			return
		}

		resp, err := list(r.Context(), scopeOf(id), selection)
		if err != nil {
			h.respondError(w, r, err)
			return
		}
		h.respondJSON(w, http.StatusOK, resp)
	}
}

func (h *BuybackHandler) availableProducts(ctx context.Context, scope ports.OfferScope, _ ports.OfferSelection) (ListResponse, error) {
	products, err := h.service.AvailableProducts(ctx, scope)
	return newListResponse(products), err
}

func (h *BuybackHandler) availableConditions(ctx context.Context, scope ports.OfferScope, selection ports.OfferSelection) (ListResponse, error) {
	conditions, err := h.service.AvailableConditions(ctx, scope, selection)
	return newListResponse(conditions), err
}

func (h *BuybackHandler) availableSupplierOrderNumbers(ctx context.Context, scope ports.OfferScope, selection ports.OfferSelection) (ListResponse, error) {
	numbers, err := h.service.AvailableSupplierOrderNumbers(ctx, scope, selection)
	return newListResponse(numbers), err
}

func (h *BuybackHandler) availableAudits(ctx context.Context, scope ports.OfferScope, selection ports.OfferSelection) (ListResponse, error) {
	audits, err := h.service.AvailableAudits(ctx, scope, selection)
	return newListResponse(audits), err
}

// UpdateDevice handles PATCH /api/v1/devices/{id}
func (h *BuybackHandler) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	var req UpdateDeviceRequest
	if !h.decode(w, r, &req) {
		return
	}

	device, err := h.service.UpdateDevice(r.Context(), id, req.ToDomain())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, device)
}

// DeleteRepair handles DELETE /api/v1/repairs/{id}
func (h *BuybackHandler) DeleteRepair(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.service.DeleteRepair(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SyncRepairPrices handles POST /api/v1/repairs/prices. With ?async=true
// the prices are handed to the worker instead.
func (h *BuybackHandler) SyncRepairPrices(w http.ResponseWriter, r *http.Request) {
	var req SyncRepairPricesRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	if r.URL.Query().Get("async") == "true" {
		if err := h.tasks.EnqueueRepairPrices(r.Context(), req.Prices); err != nil {
			h.respondError(w, r, err)
			return
		}
		h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
			"message": "repair price sync scheduled",
			"prices":  len(req.Prices),
		})
		return
	}

	updated, err := h.service.SyncRepairPrices(r.Context(), req.Prices)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, SyncRepairPricesResponse{Updated: updated})
}

// ReconcileAggregates handles POST /api/v1/aggregates/reconcile. The
// recompute runs in the worker.
func (h *BuybackHandler) ReconcileAggregates(w http.ResponseWriter, r *http.Request) {
	var req ReconcileRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		h.respondError(w, r, err)
		return
	}

	if err := h.tasks.EnqueueReconcile(r.Context(), req.AuditRequestIDs, req.BuybackOfferIDs); err != nil {
		h.respondError(w, r, err)
		return
	}

	h.respondJSON(w, http.StatusAccepted, map[string]interface{}{
		"message":           "reconcile scheduled",
		"audit_request_ids": len(req.AuditRequestIDs),
		"buyback_offer_ids": len(req.BuybackOfferIDs),
	})
}

// Helper methods

func (h *BuybackHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		h.respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + " format"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *BuybackHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return false
	}
	return true
}

func (h *BuybackHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response",
			slog.String("error", err.Error()))
	}
}

// respondError maps domain errors to status codes. Validation errors carry
// their kind and field; anything unknown is logged and reported as a 500.
func (h *BuybackHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	body := ErrorResponse{Error: h.translator.Translate(ctx, err)}

	if verr, ok := domain.AsValidationError(err); ok {
		body.Kind = string(verr.Kind)
		body.Field = verr.Field
		h.logger.InfoContext(ctx, "request rejected",
			slog.String("kind", body.Kind),
			slog.String("error", err.Error()))
		h.respondJSON(w, http.StatusUnprocessableEntity, body)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		h.respondJSON(w, http.StatusNotFound, body)
		return
	}

	h.logger.ErrorContext(ctx, "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()))
	h.respondJSON(w, http.StatusInternalServerError, body)
}
