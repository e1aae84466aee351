// Package cart holds a pickup session's in-memory cart. Nothing here is
// persisted: the cart lives for one session and is gone on restart.
package cart

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MaxItems caps a session's cart. Adding past the cap is a no-op.
const MaxItems = 5

var ErrEmptyCart = errors.New("cart is empty")

type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// PickupOrder is the result of checking out: the items and the chosen
// pickup time under a reference the front desk can read back.
type PickupOrder struct {
	Ref        string    `json:"ref"`
	Items      []Item    `json:"items"`
	PickupTime string    `json:"pickupTime"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Cart struct {
	items      []Item
	pickupTime string
}

func New() *Cart {
	return &Cart{pickupTime: "ASAP"}
}

// Add appends an item and reports whether it fit.
func (c *Cart) Add(item Item) bool {
	if len(c.items) >= MaxItems {
		return false
	}
	c.items = append(c.items, item)
	return true
}

// Remove drops the item at index. Out-of-range indexes are ignored.
func (c *Cart) Remove(index int) {
	if index < 0 || index >= len(c.items) {
		return
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
}

func (c *Cart) Items() []Item {
	return append([]Item{}, c.items...)
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) SetPickupTime(t string) {
	c.pickupTime = t
}

func (c *Cart) PickupTime() string {
	return c.pickupTime
}

func (c *Cart) Clear() {
	c.items = nil
	c.pickupTime = "ASAP"
}

// Checkout turns the cart into a pickup order and clears it.
func (c *Cart) Checkout() (PickupOrder, error) {
	if len(c.items) == 0 {
		return PickupOrder{}, ErrEmptyCart
	}
	order := PickupOrder{
		Ref:        uuid.NewString(),
		Items:      c.Items(),
		PickupTime: c.pickupTime,
		CreatedAt:  time.Now(),
	}
	c.Clear()
	return order, nil
}
