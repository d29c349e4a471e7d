package model

import "time"

// AdoptionStatus is a closed set. Requests start Pending; admins may move
// them to any of the three values, including back to Pending.
type AdoptionStatus string

const (
	StatusPending  AdoptionStatus = "Pending"
	StatusApproved AdoptionStatus = "Approved"
	StatusRejected AdoptionStatus = "Rejected"
)

func (s AdoptionStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type AdoptionRequest struct {
	ID string `json:"id"`
	// ProductID and ProductName identify the pet at request time. The name
	// is denormalized on purpose and does not track later catalog edits.
	ProductID   string         `json:"productId"`
	ProductName string         `json:"productName"`
	UserEmail   string         `json:"userEmail"`
	UserName    string         `json:"userName,omitempty"`
	UserContact string         `json:"userContact,omitempty"`
	Message     string         `json:"message,omitempty"`
	Status      AdoptionStatus `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type CreateAdoptionRequest struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UserEmail   string `json:"userEmail"`
	UserName    string `json:"userName"`
	UserContact string `json:"userContact"`
	Message     string `json:"message"`
}

// UpdateAdoptionStatusRequest carries the new status; when the field is
// absent the current status is retained.
type UpdateAdoptionStatusRequest struct {
	Status *AdoptionStatus `json:"status"`
}

type AdoptionCreatedResponse struct {
	Message  string          `json:"message"`
	Adoption AdoptionRequest `json:"adoption"`
}

type AdoptionUpdatedResponse struct {
	Message        string          `json:"message"`
	UpdatedRequest AdoptionRequest `json:"updatedRequest"`
}

type AdoptionDeletedResponse struct {
	Message string          `json:"message"`
	Deleted AdoptionRequest `json:"deleted"`
}
