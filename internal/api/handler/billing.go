package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-analytics-api/internal/domain"
	"github.com/vfg2006/campaign-analytics-api/internal/usecases/billing"
	"github.com/vfg2006/campaign-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-analytics-api/pkg/log"
)

func writeBillingError(w http.ResponseWriter, logger log.Logger, err error) {
	switch {
	case errors.Is(err, billing.ErrInvalidAmount),
		errors.Is(err, billing.ErrUnsupportedCurrency),
		errors.Is(err, billing.ErrMissingCustomer):
		apiErrors.WriteError(w, apiErrors.ErrInvalidPayment, err.Error(), nil)
	case errors.Is(err, billing.ErrPaymentNotFound):
		apiErrors.WriteError(w, apiErrors.ErrPaymentNotFound, err.Error(), nil)
	case errors.Is(err, billing.ErrPaymentNotRetryable):
		apiErrors.WriteError(w, apiErrors.ErrPaymentNotRetryable, err.Error(), nil)
	case errors.Is(err, billing.ErrMaxAttemptsReached):
		apiErrors.WriteError(w, apiErrors.ErrPaymentMaxAttempts, err.Error(), nil)
	case errors.Is(err, billing.ErrNotificationNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	default:
		logger.WithField("error", err.Error()).Error("billing: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func CreatePayment(processor billing.PaymentProcessor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.PaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithField("error", err.Error()).Warn("billing: invalid payment body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		payment, err := processor.ProcessPayment(r.Context(), req)
		if err != nil {
			writeBillingError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusCreated, payment)
	})
}

func ListPayments(processor billing.PaymentProcessor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, processor.ListPayments())
	})
}

func GetPayment(processor billing.PaymentProcessor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		payment, err := processor.GetPayment(id)
		if err != nil {
			writeBillingError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, payment)
	})
}

func RetryPayment(processor billing.PaymentProcessor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		payment, err := processor.RetryPayment(r.Context(), id)
		if err != nil {
			writeBillingError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, payment)
	})
}

func ListNotifications(processor billing.PaymentProcessor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unread"))
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, processor.Notifications(unreadOnly))
	})
}

func MarkNotificationRead(processor billing.PaymentProcessor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := processor.MarkNotificationRead(id); err != nil {
			writeBillingError(w, logger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func GetQueueStatus(processor billing.PaymentProcessor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, processor.QueueStatus())
	})
}
