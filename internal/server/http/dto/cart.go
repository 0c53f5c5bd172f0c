package dto

// CartItemRequest adds or updates one cart line.
type CartItemRequest struct {
	VariantID int64 `json:"variant_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

// CartItemResponse is one cart line.
type CartItemResponse struct {
	VariantID int64 `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

// CartResponse is the user's pending selection.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
}
