package checkout

import "kizuna/internal/domain/plan"

// PaymentRequest is the checkout form as typed by the user
type PaymentRequest struct {
	Email      string `json:"email" validate:"required,email,max=254"`
	CardNumber string `json:"cardNumber" validate:"required"`
	CardExpiry string `json:"cardExpiry" validate:"required"`
	CardCVC    string `json:"cardCvc" validate:"required"`
	CardName   string `json:"cardName" validate:"required"`
}

// Summary is the order shown next to the form
type Summary struct {
	Plan             plan.PlanType `json:"plan"`
	PlanName         string        `json:"planName"`
	Price            string        `json:"price"`
	Features         []string      `json:"features"`
	PageURL          string        `json:"pageUrl"`
	QRCodeURL        string        `json:"qrCodeUrl"`
	CustomDomain     bool          `json:"customDomain"`
	SimulationNotice string        `json:"simulationNotice"`
}

// Result is the success view after a payment
type Result struct {
	Status    string  `json:"status"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	EmailSent string  `json:"emailSent"`
	Email     string  `json:"email"`
	PageURL   string  `json:"pageUrl"`
	QRCodeURL string  `json:"qrCodeUrl"`
	QRLabel   string  `json:"qrLabel"`
	Receipt   Receipt `json:"receipt"`
}
