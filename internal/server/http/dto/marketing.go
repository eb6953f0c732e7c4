package dto

import "time"

// SubscribeRequest describes a newsletter subscription payload.
type SubscribeRequest struct {
	Email string `json:"email"`
}

// CampaignRequest describes a newsletter issue to dispatch.
type CampaignRequest struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// CampaignResponse describes a stored campaign.
type CampaignResponse struct {
	ID        int64     `json:"id"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactRequest describes a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse describes a stored contact message.
type ContactResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactListResponse is a paginated contact-message page.
type ContactListResponse struct {
	Items []ContactResponse `json:"items"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}

// SellRequestPayload describes a sell-request submission.
type SellRequestPayload struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	ProductName string   `json:"product_name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// SellRequestResponse describes a stored sell request.
type SellRequestResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ProductName string    `json:"product_name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SellRequestListResponse is a paginated sell-request page.
type SellRequestListResponse struct {
	Items []SellRequestResponse `json:"items"`
	Total int64                 `json:"total"`
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
}
