package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"funsomex-web/internal/domain"
	"funsomex-web/internal/donate"
	"funsomex-web/internal/middleware"
)

type checkoutRequest struct {
	Preset       float64 `json:"preset"`
	CustomAmount string  `json:"custom_amount"`
	DonorName    string  `json:"donor_name"`
	DonorEmail   string  `json:"donor_email"`
	Message      string  `json:"message"`
}

// DonatePage serves the donate view. When the navigation is a provider return
// trip it settles the outcome first: capture on success, a notice on
// cancellation, nothing when the parameters are incomplete.
func (a *App) DonatePage(w http.ResponseWriter, r *http.Request) {
	ret := donate.ParseReturn(r.URL.Query())

	view := map[string]any{
		"locale":  middleware.LocaleFromContext(r.Context()),
		"presets": donate.PresetAmounts,
	}
	if info, err := a.API.FoundationInfo(r.Context()); err == nil {
		view["donation_info"] = info.DonationInfo
	}

	if ret.IsReturn() {
		flow := donate.NewFlow(a.API, a.Logger)
		pending := a.Sessions.PendingPayment(r)
		outcome, err := flow.HandleReturn(r.Context(), ret, pending)
		a.Sessions.ClearPendingPayment(w)
		if err != nil {
			a.Logger.Error().Err(err).Msg("payment capture failed")
			view["error"] = "Error al procesar la donación"
		} else {
			view["completed"] = outcome.Completed
			view["cancelled"] = outcome.Cancelled
			if outcome.Message != "" {
				view["message"] = outcome.Message
			}
			if outcome.Stats != nil {
				view["stats"] = outcome.Stats
				a.json(w, http.StatusOK, view)
				return
			}
		}
	}

	if stats, err := a.API.DonationStats(r.Context()); err == nil {
		view["stats"] = stats
	}
	a.json(w, http.StatusOK, view)
}

// DonateCheckout resolves the selected amount, creates the payment order and
// hands back the provider approval URL for the full-page redirect. The
// payment id is recorded in a short-lived cookie so the return trip can be
// correlated with this checkout.
func (a *App) DonateCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "solicitud inválida")
		return
	}

	flow := donate.NewFlow(a.API, a.Logger)
	if req.Preset > 0 {
		flow.Selection.ChoosePreset(req.Preset)
	}
	if req.CustomAmount != "" {
		flow.Selection.EnterCustom(donate.ParseAmount(req.CustomAmount))
	}
	flow.Donor = donate.Donor{
		Name:    req.DonorName,
		Email:   req.DonorEmail,
		Message: req.Message,
	}

	order, err := flow.Checkout(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, donate.ErrInvalidAmount):
			a.error(w, http.StatusBadRequest, "invalid_amount", "Por favor selecciona o ingresa un monto válido")
		case errors.Is(err, domain.ErrCollaborator):
			a.error(w, http.StatusBadGateway, "payment_failed", "Error al crear la orden de pago")
		default:
			a.apiError(w, r, err)
		}
		return
	}

	a.Sessions.SetPendingPayment(w, order.PaymentID)
	a.json(w, http.StatusOK, map[string]any{
		"success":      true,
		"approval_url": order.ApprovalURL,
		"payment_id":   order.PaymentID,
		"donation_id":  order.DonationID,
	})
}
