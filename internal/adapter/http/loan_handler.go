package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"loanbook-backend/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID     string           `json:"borrower_id" validate:"required,hex32"`
	Principal      *decimal.Decimal `json:"principal" validate:"required,dgte=0,dec2"`
	InterestRate   *decimal.Decimal `json:"interest_rate" validate:"required,dgte=0,dec4"`
	PaymentDay     *int             `json:"payment_day" validate:"omitempty,paymentday"`
	MonthlyPayment *decimal.Decimal `json:"monthly_payment" validate:"omitempty,dgte=0,dec2"`
	ApprovedAt     *time.Time       `json:"approved_at"`
}

type updateLoanStatusReq struct {
	Status string `json:"status" validate:"required,oneof=pending approved active paid defaulted"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		BorrowerID:     req.BorrowerID,
		Principal:      *req.Principal,
		InterestRate:   *req.InterestRate,
		PaymentDay:     req.PaymentDay,
		MonthlyPayment: req.MonthlyPayment,
		ApprovedAt:     req.ApprovedAt,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), loan.ListLoansInput{
		BorrowerID: c.QueryParam("borrower_id"),
		Status:     c.QueryParam("status"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	id, ok, err := validID(c, "loan_id")
	if !ok {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) UpdateLoanStatus(c echo.Context) error {
	id, ok, err := validID(c, "loan_id")
	if !ok {
		return err
	}
	var req updateLoanStatusReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Transition(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) GetStatement(c echo.Context) error {
	id, ok, err := validID(c, "loan_id")
	if !ok {
		return err
	}
	st, err := h.uc.Statement(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *LoanHandler) ListTransitions(c echo.Context) error {
	id, ok, err := validID(c, "loan_id")
	if !ok {
		return err
	}
	out, err := h.uc.Transitions(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
