// Package transport exposes the settlement and ledger services over
// HTTP/JSON, plus a websocket feed of newly appended ledger blocks.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/scholarpay/scholarpay-backend/internal/settlement"
	"go.uber.org/zap"
)

// Handler routes API requests to the settlement coordinator and the ledger.
type Handler struct {
	settlement Settlement
	ledger     Ledger
	reader     SettlementReader
	stream     *Stream
	logger     *zap.Logger
}

// NewHandler constructs a Handler. stream may be nil when the block feed is
// not served.
func NewHandler(settlement Settlement, ledger Ledger, reader SettlementReader, stream *Stream, logger *zap.Logger) (*Handler, error) {
	switch {
	case settlement == nil:
		return nil, errors.New("settlement is required")
	case ledger == nil:
		return nil, errors.New("ledger is required")
	case reader == nil:
		return nil, errors.New("settlement reader is required")
	}

	return &Handler{
		settlement: settlement,
		ledger:     ledger,
		reader:     reader,
		stream:     stream,
		logger:     logger.Named("transport"),
	}, nil
}

// Register mounts all routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/applications/{id}/order", h.createOrder)
	mux.HandleFunc("POST /v1/payments/verify", h.verifyPayment)
	mux.HandleFunc("POST /v1/applications/{id}/payout", h.initiatePayout)
	mux.HandleFunc("GET /v1/applications/{id}/transactions", h.listTransactions)
	mux.HandleFunc("GET /v1/applications/{id}/payouts", h.listPayouts)
	mux.HandleFunc("GET /v1/ledger/verify", h.verifyLedger)
	mux.HandleFunc("GET /v1/ledger/stats", h.ledgerStats)
	mux.HandleFunc("GET /healthz", h.healthz)
	if h.stream != nil {
		mux.HandleFunc("GET /v1/ledger/stream", h.stream.ServeHTTP)
	}
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	tx, order, err := h.settlement.CreateOrder(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{
		"transaction": tx,
		"order":       order,
	})
}

type verifyPaymentRequest struct {
	ApplicationID string `json:"applicationId"`
	OrderID       string `json:"orderId"`
	PaymentID     string `json:"paymentId"`
	Signature     string `json:"signature"`
}

func (h *Handler) verifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, settlement.ErrValidation)
		return
	}

	tx, err := h.settlement.VerifyPayment(r.Context(), req.ApplicationID, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"transaction": tx})
}

func (h *Handler) initiatePayout(w http.ResponseWriter, r *http.Request) {
	tx, err := h.settlement.InitiatePayout(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, map[string]any{"transaction": tx})
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.reader.TransactionsByApplication(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}

func (h *Handler) listPayouts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.reader.PayoutHistory(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"payouts": attempts})
}

func (h *Handler) verifyLedger(w http.ResponseWriter, r *http.Request) {
	report, err := h.ledger.Verify(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"valid":            report.Valid,
		"blocks":           report.Blocks,
		"firstBrokenIndex": report.FirstBrokenIndex,
	})
}

func (h *Handler) ledgerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.ledger.Stats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"totalBlocks":      stats.TotalBlocks,
		"latestBlockIndex": stats.LatestBlockIndex,
		"latestBlockHash":  stats.LatestBlockHash,
		"valid":            stats.Valid,
		"lastValidated":    stats.LastValidated,
	})
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, settlement.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, settlement.ErrSignatureMismatch):
		status = http.StatusUnauthorized
	case errors.Is(err, settlement.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, settlement.ErrPreconditionFailed):
		status = http.StatusPreconditionFailed
	case errors.Is(err, settlement.ErrGatewayFailure):
		status = http.StatusBadGateway
	}

	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	} else {
		h.logger.Warn("request rejected",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
