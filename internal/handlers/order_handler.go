package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hwcrafts/pcb-preorder/internal/checkout"
	"github.com/hwcrafts/pcb-preorder/internal/forms"
	"github.com/hwcrafts/pcb-preorder/internal/service"
	"github.com/hwcrafts/pcb-preorder/internal/telemetry"
)

// OrderHandler handles preorder form submissions
type OrderHandler struct {
	builder *checkout.Builder
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(builder *checkout.Builder, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		builder: builder,
		log:     log,
	}
}

// SubmitOrder handles POST /submit-order. A valid submission answers
// 303 with the checkout session URL in both the Location header and
// the body; any failure answers 400 with a plain-text message.
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	candidate := forms.Decode(r)

	order, err := service.Validate(candidate)
	if err != nil {
		h.log.Warn("order rejected", "error", err)
		telemetry.OrderSubmissions.WithLabelValues("rejected").Inc()
		writeFailure(w, err)
		return
	}

	url, err := h.builder.Build(r.Context(), order)
	if err != nil {
		var invariantErr *checkout.InvariantError
		if errors.As(err, &invariantErr) {
			// Never expected past validation; a defect, not bad input.
			h.log.Error("order invariant violated", "error", err)
		} else {
			h.log.Error("checkout failed", "error", err, "cause", errors.Unwrap(err))
		}
		telemetry.OrderSubmissions.WithLabelValues("failed").Inc()
		writeFailure(w, err)
		return
	}

	telemetry.OrderSubmissions.WithLabelValues("accepted").Inc()
	telemetry.SessionsCreated.Inc()

	w.Header().Set("Location", url)
	w.WriteHeader(http.StatusSeeOther)
	if _, err := w.Write([]byte(url)); err != nil {
		h.log.Error("failed to write redirect body", "error", err)
	}
}

// writeFailure answers 400 with the error's user-facing message
// verbatim, falling back to a generic message when there is none.
func writeFailure(w http.ResponseWriter, err error) {
	message := err.Error()
	if message == "" {
		message = "Something went wrong"
	}
	http.Error(w, message, http.StatusBadRequest)
}
