// Package cart provides an immutable cart aggregate with pure transition
// functions. Every mutation returns a fresh snapshot, so callers can hold on
// to earlier states and compare them freely.
package cart

import (
	"github.com/shopspring/decimal"

	"quickbite/internal/model"
)

// Line is one cart entry: a frozen item snapshot plus a quantity.
type Line struct {
	MenuItemID   *string
	Name         string
	UnitPrice    decimal.Decimal
	VariantLabel string
	Quantity     int
}

// key identifies lines that should merge: same catalog reference, name,
// variant, and unit price.
type key struct {
	menuItemID string
	name       string
	variant    string
	price      string
}

func lineKey(l Line) key {
	id := ""
	if l.MenuItemID != nil {
		id = *l.MenuItemID
	}
	return key{menuItemID: id, name: l.Name, variant: l.VariantLabel, price: l.UnitPrice.String()}
}

// Cart is an immutable snapshot of cart lines in insertion order.
type Cart struct {
	lines []Line
}

// New returns an empty cart.
func New() Cart {
	return Cart{}
}

// Lines returns a copy of the cart's lines in insertion order.
func (c Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c Cart) Len() int {
	return len(c.lines)
}

// Add returns a new cart with the item added. Adding an item identical to an
// existing line (same reference, name, variant, and price) merges quantities.
// Non-positive quantities leave the cart unchanged.
func (c Cart) Add(item Line) Cart {
	if item.Quantity <= 0 {
		return c
	}
	k := lineKey(item)
	next := c.Lines()
	for i, l := range next {
		if lineKey(l) == k {
			next[i].Quantity += item.Quantity
			return Cart{lines: next}
		}
	}
	return Cart{lines: append(next, item)}
}

// Remove returns a new cart without the line at the given index. An index out
// of range leaves the cart unchanged.
func (c Cart) Remove(index int) Cart {
	if index < 0 || index >= len(c.lines) {
		return c
	}
	next := make([]Line, 0, len(c.lines)-1)
	next = append(next, c.lines[:index]...)
	next = append(next, c.lines[index+1:]...)
	return Cart{lines: next}
}

// SetQuantity returns a new cart with the line's quantity replaced. Setting a
// quantity of zero or less removes the line.
func (c Cart) SetQuantity(index int, quantity int) Cart {
	if index < 0 || index >= len(c.lines) {
		return c
	}
	if quantity <= 0 {
		return c.Remove(index)
	}
	next := c.Lines()
	next[index].Quantity = quantity
	return Cart{lines: next}
}

// Subtotal sums unitPrice * quantity across the cart.
func (c Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return sum
}

// Items converts the cart lines into order line items for checkout.
func (c Cart) Items() []model.LineItemRequest {
	items := make([]model.LineItemRequest, len(c.lines))
	for i, l := range c.lines {
		items[i] = model.LineItemRequest{
			MenuItemID:   l.MenuItemID,
			Name:         l.Name,
			UnitPrice:    l.UnitPrice,
			Quantity:     l.Quantity,
			VariantLabel: l.VariantLabel,
		}
	}
	return items
}
