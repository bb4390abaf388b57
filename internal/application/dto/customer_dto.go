package dto

// CreateCustomerRequest body for POST /api/customers (also used for PUT).
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin,omitempty"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	GSTIN   string `json:"gstin,omitempty"`
}
