package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
)

var asOf = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func daysAgo(n int) *time.Time {
	t := asOf.Add(-time.Duration(n) * 24 * time.Hour)
	return &t
}

func activeLoan(principal, rate string, approvedDaysAgo int) *loan.Loan {
	return &loan.Loan{
		LoanID:       "llllllllllllllllllllllllllllllll",
		Principal:    dec(principal),
		InterestRate: dec(rate),
		Status:       loan.StatusActive,
		ApprovedAt:   daysAgo(approvedDaysAgo),
	}
}

func pays(amounts ...string) []payment.Payment {
	out := make([]payment.Payment, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, payment.Payment{Amount: dec(a)})
	}
	return out
}

func TestBalance(t *testing.T) {
	l := activeLoan("1000", "5", 0)
	cases := []struct {
		name string
		p    []payment.Payment
		want string
	}{
		{"no payments", nil, "1000"},
		{"partial", pays("100", "250.50"), "649.5"},
		{"exact payoff", pays("1000"), "0"},
		{"overpaid stays negative", pays("800", "300.25"), "-100.25"},
	}
	for _, tc := range cases {
		got := Balance(l, tc.p)
		if !got.Equal(dec(tc.want)) {
			t.Fatalf("%s: balance = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestAmountDue_NeverNegative(t *testing.T) {
	if got := AmountDue(dec("1000"), dec("100"), dec("5000")); !got.IsZero() {
		t.Fatalf("amount due = %s, want 0", got)
	}
	if got := AmountDue(dec("1000"), dec("100"), dec("100")); !got.Equal(dec("1000")) {
		t.Fatalf("amount due = %s, want 1000", got)
	}
}

func TestBillingCycles_TieBreak(t *testing.T) {
	cases := map[int64]int64{
		-5: 0,
		0:  0,
		1:  1,
		29: 1,
		30: 1,
		31: 2,
		59: 2,
		60: 2,
		61: 3,
	}
	for days, want := range cases {
		if got := BillingCycles(days); got != want {
			t.Fatalf("BillingCycles(%d) = %d, want %d", days, got, want)
		}
	}
}

func TestDaysElapsed_Floors(t *testing.T) {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	if got := DaysElapsed(start, start.Add(47*time.Hour)); got != 1 {
		t.Fatalf("47h = %d days, want 1", got)
	}
	if got := DaysElapsed(start, start.Add(-time.Hour)); got != -1 {
		t.Fatalf("-1h = %d days, want -1", got)
	}
	if got := DaysElapsed(start, start.Add(-48*time.Hour)); got != -2 {
		t.Fatalf("-48h = %d days, want -2", got)
	}
}

func TestAccruedInterest(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, "0"},
		{30, "50"},
		{31, "100"},
		{90, "150"},
	}
	for _, tc := range cases {
		got := AccruedInterest(activeLoan("1000", "5", tc.days), asOf)
		if !got.Equal(dec(tc.want)) {
			t.Fatalf("%d days: accrued = %s, want %s", tc.days, got, tc.want)
		}
	}
}

func TestAccruedInterest_ZeroCases(t *testing.T) {
	future := activeLoan("1000", "5", 0)
	tomorrow := asOf.Add(24 * time.Hour)
	future.ApprovedAt = &tomorrow

	noApproval := activeLoan("1000", "5", 40)
	noApproval.ApprovedAt = nil

	for _, st := range []loan.Status{loan.StatusPending, loan.StatusPaid, loan.StatusDefaulted} {
		l := activeLoan("1000", "5", 40)
		l.Status = st
		if got := AccruedInterest(l, asOf); !got.IsZero() {
			t.Fatalf("status %s: accrued = %s, want 0", st, got)
		}
	}
	for name, l := range map[string]*loan.Loan{
		"asOf before approval": future,
		"no approvedAt":        noApproval,
		"zero rate":            activeLoan("1000", "0", 40),
		"zero principal":       activeLoan("0", "5", 40),
	} {
		if got := AccruedInterest(l, asOf); !got.IsZero() {
			t.Fatalf("%s: accrued = %s, want 0", name, got)
		}
	}
}

func TestAccruedInterest_ExactDecimal(t *testing.T) {
	// 0.1 * 3 is where float64 arithmetic drifts.
	l := activeLoan("333.33", "0.1", 61)
	got := AccruedInterest(l, asOf)
	if !got.Equal(dec("0.99999")) {
		t.Fatalf("accrued = %s, want 0.99999", got)
	}
}

func TestStatement_Scenarios(t *testing.T) {
	// principal 1000 at 5%, approved 31 days ago, one payment of 100
	st := BuildStatement(activeLoan("1000", "5", 31), pays("100"), asOf)
	if !st.AccruedInterest.Equal(dec("100")) {
		t.Fatalf("accrued = %s, want 100", st.AccruedInterest)
	}
	if !st.AmountDue.Equal(dec("1000")) {
		t.Fatalf("amount due = %s, want 1000", st.AmountDue)
	}
	if !st.Balance.Equal(dec("900")) {
		t.Fatalf("balance = %s, want 900", st.Balance)
	}
	if st.BillingCycles != 2 {
		t.Fatalf("cycles = %d, want 2", st.BillingCycles)
	}
	if !st.MinimalPayment.Equal(dec("50")) {
		t.Fatalf("minimal payment = %s, want 50", st.MinimalPayment)
	}

	// same loan, no payments, approved now
	st = BuildStatement(activeLoan("1000", "5", 0), nil, asOf)
	if !st.AccruedInterest.IsZero() || !st.AmountDue.Equal(dec("1000")) || !st.Balance.Equal(dec("1000")) {
		t.Fatalf("unexpected statement: %+v", st)
	}
}

func TestNextPaymentDate(t *testing.T) {
	if NextPaymentDate(nil, asOf) != nil {
		t.Fatal("want nil without approval")
	}
	approved := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	got := NextPaymentDate(&approved, asOf)
	if want := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("next = %s, want %s", got, want)
	}

	approved = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) // 73 days before asOf
	got = NextPaymentDate(&approved, asOf)
	if want := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("next = %s, want %s", got, want)
	}
}
