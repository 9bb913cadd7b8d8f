package card

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

type patchRequest struct {
	Name           *string  `json:"name"`
	Bank           *string  `json:"bank"`
	Brand          *string  `json:"brand"`
	LastFourDigits *string  `json:"last_four_digits"`
	ClosingDay     *int     `json:"closing_day"`
	PaymentDay     *int     `json:"payment_day"`
	CreditLimit    *float64 `json:"credit_limit"`
	Color          *string  `json:"color"`
}

func (req patchRequest) toPatch() Patch {
	patch := Patch{
		Name:           req.Name,
		Bank:           req.Bank,
		LastFourDigits: req.LastFourDigits,
		ClosingDay:     req.ClosingDay,
		PaymentDay:     req.PaymentDay,
		CreditLimit:    req.CreditLimit,
		Color:          req.Color,
	}
	if req.Brand != nil {
		brand := Brand(*req.Brand)
		patch.Brand = &brand
	}
	return patch
}

func (handler *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cards, err := handler.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(cards); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new credit card")
	w.Header().Set("Content-Type", "application/json")

	var c CreditCard
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := handler.service.Create(r.Context(), c)
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

	ok, err := handler.service.Update(r.Context(), id, req.toPatch())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Card not found", http.StatusNotFound)
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
		http.Error(w, "Card not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) AddBenefit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	cardID := mux.Vars(r)["id"]

	var benefit CardBenefit
	if err := json.NewDecoder(r.Body).Decode(&benefit); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, ok, err := handler.service.AddBenefit(r.Context(), cardID, benefit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !ok {
		http.Error(w, "Card not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(created); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) RemoveBenefit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	vars := mux.Vars(r)

	ok, err := handler.service.RemoveBenefit(r.Context(), vars["id"], vars["benefitId"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Benefit not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (handler *Handler) Statuses(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	statuses, err := handler.service.Statuses(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(statuses); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *Handler) TodaysBenefits(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	benefits, err := handler.service.TodaysBenefits(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(benefits); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
