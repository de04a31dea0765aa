package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domain "loanbook-backend/internal/domain/borrower"
	"loanbook-backend/internal/usecase/borrower"
)

type BorrowerHandler struct{ uc *borrower.Usecase }

func NewBorrowerHandler(uc *borrower.Usecase) *BorrowerHandler { return &BorrowerHandler{uc: uc} }

type createBorrowerReq struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"required,max=32"`
	CreditScore *int   `json:"credit_score" validate:"omitempty,gte=300,lte=850"`
}

type updateBorrowerStatusReq struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

func (h *BorrowerHandler) CreateBorrower(c echo.Context) error {
	var req createBorrowerReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Create(c.Request().Context(), borrower.CreateBorrowerInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BorrowerHandler) ListBorrowers(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BorrowerHandler) GetBorrower(c echo.Context) error {
	id, ok, err := validID(c, "borrower_id")
	if !ok {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *BorrowerHandler) UpdateBorrowerStatus(c echo.Context) error {
	id, ok, err := validID(c, "borrower_id")
	if !ok {
		return err
	}
	var req updateBorrowerStatusReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), id, domain.Status(req.Status))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
