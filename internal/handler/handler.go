// Package handler содержит HTTP-обработчики API сервиса обработки чеков.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mmeshcher/receipt-processor/internal/metrics"
	"github.com/mmeshcher/receipt-processor/internal/model"
	"github.com/mmeshcher/receipt-processor/internal/repository"
	"github.com/mmeshcher/receipt-processor/internal/service"
)

const (
	msgInvalidReceipt = "Hm, your receipt format doesn't look right."
	msgUnknownID      = "ID is invalid. Did you do /receipts/process first?"

	maxReceiptBytes = 1 << 20
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	ProcessReceipt(ctx context.Context, r *model.Receipt) (*model.ScoreRecord, error)
	GetPoints(ctx context.Context, id string) (int, error)
}

// Handler реализует HTTP-обработчики API сервиса обработки чеков.
type Handler struct {
	service        Service
	logger         *zap.Logger
	metrics        *metrics.Metrics
	allowedOrigins []string
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
// m может быть nil, тогда метрики не собираются и /metrics не регистрируется.
func NewHandler(s Service, logger *zap.Logger, m *metrics.Metrics, allowedOrigins []string) *Handler {
	return &Handler{
		service:        s,
		logger:         logger,
		metrics:        m,
		allowedOrigins: allowedOrigins,
	}
}

type processResponse struct {
	ID string `json:"id"`
}

type pointsResponse struct {
	Points int `json:"points"`
}

type statusResponse struct {
	Message string `json:"message"`
}

// Status сообщает, что сервис запущен.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, statusResponse{Message: "App is running"})
}

// ProcessReceipt принимает чек, начисляет баллы и возвращает идентификатор чека.
func (h *Handler) ProcessReceipt(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxReceiptBytes)
	defer r.Body.Close()

	var receipt *model.Receipt
	if err := json.NewDecoder(r.Body).Decode(&receipt); err != nil {
		h.metrics.ReceiptRejected()
		http.Error(w, msgInvalidReceipt, http.StatusBadRequest)
		return
	}

	rec, err := h.service.ProcessReceipt(r.Context(), receipt)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReceipt) {
			h.metrics.ReceiptRejected()
			http.Error(w, msgInvalidReceipt, http.StatusBadRequest)
			return
		}
		h.logger.Error("process receipt error", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.metrics.ReceiptProcessed(rec.Points)
	h.writeJSON(w, processResponse{ID: rec.ID})
}

// GetPoints возвращает баллы, начисленные за чек с указанным идентификатором.
func (h *Handler) GetPoints(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	points, err := h.service.GetPoints(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, msgUnknownID, http.StatusBadRequest)
			return
		}
		h.logger.Error("get points error", zap.Error(err), zap.String("id", id))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, pointsResponse{Points: points})
}

func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
	}
}
