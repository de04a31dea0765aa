package http

import "github.com/labstack/echo/v4"

type Handlers struct {
	Health    *Handler
	Borrowers *BorrowerHandler
	Loans     *LoanHandler
	Payments  *PaymentHandler
	Reports   *ReportHandler
}

// Register mounts every route. mw wraps the mutating routes only.
func Register(e *echo.Echo, h Handlers, mw ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	e.GET("/borrowers", h.Borrowers.ListBorrowers)
	e.GET("/borrowers/:borrower_id", h.Borrowers.GetBorrower)
	e.POST("/borrowers", h.Borrowers.CreateBorrower, mw...)
	e.PUT("/borrowers/:borrower_id/status", h.Borrowers.UpdateBorrowerStatus, mw...)

	e.GET("/loans", h.Loans.ListLoans)
	e.GET("/loans/:loan_id", h.Loans.GetLoan)
	e.GET("/loans/:loan_id/statement", h.Loans.GetStatement)
	e.GET("/loans/:loan_id/transitions", h.Loans.ListTransitions)
	e.POST("/loans", h.Loans.CreateLoan, mw...)
	e.PUT("/loans/:loan_id/status", h.Loans.UpdateLoanStatus, mw...)

	e.GET("/loans/:loan_id/payments", h.Payments.ListPayments)
	e.POST("/loans/:loan_id/payments", h.Payments.RecordPayment, mw...)
	e.PUT("/payments/:payment_id", h.Payments.UpdatePayment, mw...)
	e.DELETE("/payments/:payment_id", h.Payments.DeletePayment, mw...)

	e.GET("/reports", h.Reports.GetReport)
}
