package projects

import "time"

// Project is a construction project record owned by a client account.
type Project struct {
	ID               string     `json:"id"`
	Owner            string     `json:"owner"`
	Title            string     `json:"projectTitle"`
	Status           string     `json:"projectStatus"`
	Type             string     `json:"type"`
	Quarter          string     `json:"quarter"`
	DocumentStatus   string     `json:"documentStatus"`
	PaymentStatus    string     `json:"paymentStatus"`
	HighPriority     bool       `json:"highPriority"`
	StartDate        time.Time  `json:"startDate"`
	EstimatedEndDate *time.Time `json:"estimatedEndDate,omitempty"`
	PhoneNumber      string     `json:"phoneNumber"`
	Address          string     `json:"address"`
	Budget           int64      `json:"budget"`
	Paid             int64      `json:"paid"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

var validStatuses = map[string]struct{}{
	"Quoted":            {},
	"Design":            {},
	"Fabrication":       {},
	"Transportation":    {},
	"Assembly":          {},
	"Bolting":           {},
	"Erection":          {},
	"Finishing Touches": {},
}

var validTypes = map[string]struct{}{
	"PEB Construction":          {},
	"Conventional Construction": {},
}

var validQuarters = map[string]struct{}{
	"Q1": {}, "Q2": {}, "Q3": {}, "Q4": {},
}

var validDocumentStatuses = map[string]struct{}{
	"Quotation":               {},
	"Agreement letter":        {},
	"Order confirmation":      {},
	"Advance payment receipt": {},
	"Payment Due letter":      {},
	"Final invoice":           {},
}

var validPaymentStatuses = map[string]struct{}{
	"Active":     {},
	"Non Active": {},
}
