package model

import "time"

// Product is the minimal pet-catalog record the adoption flow references.
type Product struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateProductRequest struct {
	Name string `json:"name"`
}
