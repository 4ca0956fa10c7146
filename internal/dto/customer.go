package dto

import "time"

// Customer is the full transport shape, returned by get-by-id.
type Customer struct {
	ID string `json:"id"`

	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Postal  string `json:"postal"`

	BirthDate *time.Time `json:"birth_date"`
	Notes     string     `json:"notes"`
	Gender    string     `json:"gender"`
	Active    bool       `json:"active"`

	ImageBase64 string `json:"image_base64"`

	CreatedOn time.Time  `json:"created_on"`
	UpdateOn  *time.Time `json:"update_on"`
}

// CustomerListItem is the reduced projection used by search results. List
// views never carry notes, contact details or the image payload.
type CustomerListItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city"`
	State  string `json:"state"`
	Postal string `json:"postal"`
	Gender string `json:"gender"`
	Active bool   `json:"active"`
}
