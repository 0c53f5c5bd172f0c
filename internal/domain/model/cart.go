package model

import "time"

// CartItem is one variant/quantity pair held in a cart.
type CartItem struct {
	VariantID int64
	Quantity  int
}

// Cart holds a user's pending selection. Items are embedded: adding a
// variant already present merges quantities instead of appending.
type Cart struct {
	UserID    int64
	Items     []CartItem
	UpdatedAt time.Time
}

// Merge folds the given item into the cart: an existing line for the
// same variant is incremented, otherwise the item is appended.
func (c *Cart) Merge(item CartItem) {
	for i := range c.Items {
		if c.Items[i].VariantID == item.VariantID {
			c.Items[i].Quantity += item.Quantity
			return
		}
	}
	c.Items = append(c.Items, item)
}
