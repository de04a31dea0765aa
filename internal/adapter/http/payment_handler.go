package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanbook-backend/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type recordPaymentReq struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,dgt=0,dec2"`
	PaymentDate *time.Time       `json:"payment_date"`
}

type updatePaymentReq struct {
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,dgt=0,dec2"`
	PaymentDate *time.Time       `json:"payment_date"`
}

func (h *PaymentHandler) RecordPayment(c echo.Context) error {
	loanID, ok, err := validID(c, "loan_id")
	if !ok {
		return err
	}
	var req recordPaymentReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Record(c.Request().Context(), loanID, payment.RecordPaymentInput{
		Amount:      *req.Amount,
		PaymentDate: req.PaymentDate,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	loanID, ok, err := validID(c, "loan_id")
	if !ok {
		return err
	}
	out, err := h.uc.ListByLoan(c.Request().Context(), loanID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) UpdatePayment(c echo.Context) error {
	id, ok, err := validID(c, "payment_id")
	if !ok {
		return err
	}
	var req updatePaymentReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Update(c.Request().Context(), id, payment.UpdatePaymentInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *PaymentHandler) DeletePayment(c echo.Context) error {
	id, ok, err := validID(c, "payment_id")
	if !ok {
		return err
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
