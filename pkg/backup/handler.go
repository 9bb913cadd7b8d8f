package backup

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (handler *Handler) Export(w http.ResponseWriter, r *http.Request) {
	document, err := handler.service.Export(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("expense-tracker-backup-%s.json", document.ExportDate.Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w.WriteHeader(http.StatusOK)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(document); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// Import is not supported yet; exports are for safekeeping, restores happen
// by dropping the file into the storage path.
func (handler *Handler) Import(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "import is not supported", http.StatusNotImplemented)
}

func (handler *Handler) WipeAll(w http.ResponseWriter, r *http.Request) {
	if err := handler.service.WipeAll(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
