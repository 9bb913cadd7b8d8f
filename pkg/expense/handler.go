package expense

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// expenseRequest is the submission shape: dates come in as strings (full
// RFC 3339 timestamps or plain yyyy-mm-dd) and are normalized by the service.
type expenseRequest struct {
	Description      string               `json:"description"`
	Amount           float64              `json:"amount"`
	Currency         string               `json:"currency"`
	Category         string               `json:"category"`
	ExpenseType      string               `json:"expense_type"`
	PaymentMethod    string               `json:"payment_method"`
	CardID           string               `json:"card_id"`
	Date             string               `json:"date"`
	IsShared         bool                 `json:"is_shared"`
	InstallmentData  *installmentRequest  `json:"installment_data"`
	SubscriptionData *subscriptionRequest `json:"subscription_data"`
}

type installmentRequest struct {
	TotalAmount        float64 `json:"total_amount"`
	TotalInstallments  int     `json:"total_installments"`
	CurrentInstallment int     `json:"current_installment"`
	FirstPaymentDate   string  `json:"first_payment_date"`
}

type subscriptionRequest struct {
	ServiceName string `json:"service_name"`
	BillingDay  int    `json:"billing_day"`
	IsActive    bool   `json:"is_active"`
}

type patchRequest struct {
	Description      *string              `json:"description"`
	Amount           *float64             `json:"amount"`
	Currency         *string              `json:"currency"`
	Category         *string              `json:"category"`
	PaymentMethod    *string              `json:"payment_method"`
	CardID           *string              `json:"card_id"`
	Date             *string              `json:"date"`
	IsShared         *bool                `json:"is_shared"`
	InstallmentData  *installmentRequest  `json:"installment_data"`
	SubscriptionData *subscriptionRequest `json:"subscription_data"`
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date format: %q", value)
}

func (req expenseRequest) toExpense() (Expense, error) {
	e := Expense{
		Description:   req.Description,
		Amount:        req.Amount,
		Currency:      Currency(req.Currency),
		Category:      req.Category,
		Type:          Type(req.ExpenseType),
		PaymentMethod: PaymentMethod(req.PaymentMethod),
		CardID:        req.CardID,
		IsShared:      req.IsShared,
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			return Expense{}, err
		}
		e.Date = date
	}
	if req.InstallmentData != nil {
		firstPayment, err := parseDate(req.InstallmentData.FirstPaymentDate)
		if err != nil {
			return Expense{}, err
		}
		e.Installment = &InstallmentData{
			TotalAmount:        req.InstallmentData.TotalAmount,
			TotalInstallments:  req.InstallmentData.TotalInstallments,
			CurrentInstallment: req.InstallmentData.CurrentInstallment,
			FirstPaymentDate:   firstPayment,
		}
	}
	if req.SubscriptionData != nil {
		e.Subscription = &SubscriptionData{
			ServiceName: req.SubscriptionData.ServiceName,
			BillingDay:  req.SubscriptionData.BillingDay,
			IsActive:    req.SubscriptionData.IsActive,
		}
	}
	return e, nil
}

func (req patchRequest) toPatch() (Patch, error) {
	patch := Patch{
		Description: req.Description,
		Amount:      req.Amount,
		CardID:      req.CardID,
		Category:    req.Category,
		IsShared:    req.IsShared,
	}
	if req.Currency != nil {
		currency := Currency(*req.Currency)
		patch.Currency = &currency
	}
	if req.PaymentMethod != nil {
		method := PaymentMethod(*req.PaymentMethod)
		patch.PaymentMethod = &method
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return Patch{}, err
		}
		patch.Date = &date
	}
	if req.InstallmentData != nil {
		firstPayment, err := parseDate(req.InstallmentData.FirstPaymentDate)
		if err != nil {
			return Patch{}, err
		}
		patch.Installment = &InstallmentData{
			TotalAmount:        req.InstallmentData.TotalAmount,
			TotalInstallments:  req.InstallmentData.TotalInstallments,
			CurrentInstallment: req.InstallmentData.CurrentInstallment,
			FirstPaymentDate:   firstPayment,
		}
	}
	if req.SubscriptionData != nil {
		patch.Subscription = &SubscriptionData{
			ServiceName: req.SubscriptionData.ServiceName,
			BillingDay:  req.SubscriptionData.BillingDay,
			IsActive:    req.SubscriptionData.IsActive,
		}
	}
	return patch, nil
}

func filterFromQuery(r *http.Request) (Filter, error) {
	query := r.URL.Query()
	filter := Filter{
		Type:     query.Get("type"),
		Category: query.Get("category"),
		Search:   query.Get("search"),
	}
	if value := query.Get("from"); value != "" {
		from, err := parseDate(value)
		if err != nil {
			return Filter{}, err
		}
		filter.From = &from
	}
	if value := query.Get("to"); value != "" {
		to, err := parseDate(value)
		if err != nil {
			return Filter{}, err
		}
		filter.To = &to
	}
	if value := query.Get("min"); value != "" {
		min, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid min amount: %w", err)
		}
		filter.Min = &min
	}
	if value := query.Get("max"); value != "" {
		max, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid max amount: %w", err)
		}
		filter.Max = &max
	}
	return filter, nil
}

func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	filter, err := filterFromQuery(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	expenses, err := handler.service.List(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(expenses); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new expense")
	w.Header().Set("Content-Type", "application/json")

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	e, err := req.toExpense()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), e)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var req patchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	patch, err := req.toPatch()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ok, err := handler.service.Update(r.Context(), id, patch)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	ok, err := handler.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) ResetPreview(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	preview, err := handler.service.ResetPreview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(preview); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) ResetMonth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	result, err := handler.service.ResetMonth(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
