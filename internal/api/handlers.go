package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/skylark-hq/skylark/internal/analytics"
	"github.com/skylark-hq/skylark/internal/csvcodec"
	"github.com/skylark-hq/skylark/internal/engine"
	"github.com/skylark-hq/skylark/internal/models"
)

func (a *API) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	a.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	a.jsonResponse(w, http.StatusOK, a.engine.Menu())
}

func (a *API) listIngredientsHandler(w http.ResponseWriter, r *http.Request) {
	a.jsonResponse(w, http.StatusOK, a.engine.Ingredients())
}

func (a *API) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	a.jsonResponse(w, http.StatusOK, a.engine.Orders())
}

type createOrderRequest struct {
	Items    []engine.OrderLine  `json:"items"`
	Customer models.CustomerInfo `json:"customer"`
}

func (a *API) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := readJSON(w, r, &req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, err)
		return
	}

	order, err := a.engine.PlaceOrderLines(r.Context(), req.Items, req.Customer)
	if err != nil {
		a.engineError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusCreated, order)
}

type updateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status"`
}

func (a *API) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if orderID == "" {
		a.errorResponse(w, http.StatusBadRequest, errors.New("order_id is required"))
		return
	}

	var req updateOrderStatusRequest
	if err := readJSON(w, r, &req); err != nil {
		a.errorResponse(w, http.StatusBadRequest, err)
		return
	}

	if err := a.engine.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		a.engineError(w, err)
		return
	}

	a.jsonResponse(w, http.StatusOK, map[string]string{"order_id": orderID, "status": string(req.Status)})
}

func (a *API) deleteOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")
	if err := a.engine.DeleteOrder(r.Context(), orderID); err != nil {
		a.engineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) toggleIngredientHandler(w http.ResponseWriter, r *http.Request) {
	ingredientID := chi.URLParam(r, "ingredient_id")
	if err := a.engine.ToggleIngredientStock(ingredientID); err != nil {
		a.engineError(w, err)
		return
	}
	a.jsonResponse(w, http.StatusOK, a.engine.Ingredients())
}

func (a *API) upsertMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := readJSON(w, r, &item); err != nil {
		a.errorResponse(w, http.StatusBadRequest, err)
		return
	}
	if item.Name == "" || item.Price <= 0 || !item.PrepTime.Valid() {
		a.errorResponse(w, http.StatusBadRequest, errors.New("name, positive price and a valid prep tier are required"))
		return
	}

	a.engine.UpsertMenuItem(item)
	a.jsonResponse(w, http.StatusOK, item)
}

func (a *API) deleteMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if err := a.engine.DeleteMenuItem(itemID); err != nil {
		a.engineError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) exportMenuHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="skylark_menu_data.csv"`)
	if _, err := w.Write([]byte(csvcodec.ExportMenu(a.engine.Menu()))); err != nil {
		a.logger.Errorw("failed to write csv export", "error", err)
	}
}

func (a *API) importMenuHandler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		a.errorResponse(w, http.StatusBadRequest, err)
		return
	}

	updated, err := csvcodec.ImportMenu(a.engine.Menu(), string(body))
	if err != nil {
		// malformed import never applies; report it and leave the menu alone
		a.errorResponse(w, http.StatusUnprocessableEntity, err)
		return
	}

	a.engine.ReplaceMenu(updated)
	a.jsonResponse(w, http.StatusOK, map[string]int{"items": len(updated)})
}

func (a *API) salesMetricsHandler(w http.ResponseWriter, r *http.Request) {
	a.jsonResponse(w, http.StatusOK, analytics.Compute(a.engine.Orders()))
}
