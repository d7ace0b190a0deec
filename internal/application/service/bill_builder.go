package service

import (
	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/google/uuid"
)

// BillBuilder accumulates line items for a draft bill before submission.
// It is a plain in-memory working set: stall selection is a unique set with
// selection order preserved, line items are ordered and keyed by product ID.
// All amounts are in paise. The builder never touches the store.
type BillBuilder struct {
	stallIDs []uuid.UUID
	items    []entity.BillLineItem
}

// NewBillBuilder creates an empty bill builder
func NewBillBuilder() *BillBuilder {
	return &BillBuilder{}
}

// SelectStall adds a stall to the selection. Selecting an already selected
// stall is a no-op, so the set stays unique and ordered by first selection.
func (b *BillBuilder) SelectStall(id uuid.UUID) {
	for _, existing := range b.stallIDs {
		if existing == id {
			return
		}
	}
	b.stallIDs = append(b.stallIDs, id)
}

// DeselectStall removes a stall from the selection; no-op if not selected.
func (b *BillBuilder) DeselectStall(id uuid.UUID) {
	for i, existing := range b.stallIDs {
		if existing == id {
			b.stallIDs = append(b.stallIDs[:i], b.stallIDs[i+1:]...)
			return
		}
	}
}

// SelectedStalls returns the selected stall IDs in selection order.
func (b *BillBuilder) SelectedStalls() []uuid.UUID {
	return b.stallIDs
}

// AddItem adds one unit of a product to the draft. If a line for the same
// product already exists its quantity is incremented, so there is never more
// than one line per product. A new line starts at quantity 1 with unit price
// taken from the product's selling price (missing price bills as zero).
func (b *BillBuilder) AddItem(product *entity.Product) {
	for i := range b.items {
		if b.items[i].ProductID == product.ID {
			b.items[i].Quantity++
			b.items[i].Total = b.items[i].UnitPrice * int64(b.items[i].Quantity)
			return
		}
	}

	unitPrice := product.BillingPrice()
	b.items = append(b.items, entity.BillLineItem{
		ProductID: product.ID,
		Name:      product.ItemName,
		Quantity:  1,
		UnitPrice: unitPrice,
		Total:     unitPrice,
	})
}

// SetQuantity replaces a line's quantity exactly. A quantity below 1 removes
// the line entirely (decrement to delete, not clamp to 1).
func (b *BillBuilder) SetQuantity(productID uuid.UUID, quantity int) {
	if quantity < 1 {
		b.RemoveItem(productID)
		return
	}
	for i := range b.items {
		if b.items[i].ProductID == productID {
			b.items[i].Quantity = quantity
			b.items[i].Total = b.items[i].UnitPrice * int64(quantity)
			return
		}
	}
}

// RemoveItem deletes the line for a product if present; no-op otherwise.
func (b *BillBuilder) RemoveItem(productID uuid.UUID) {
	for i := range b.items {
		if b.items[i].ProductID == productID {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// Items returns the current line items in order.
func (b *BillBuilder) Items() []entity.BillLineItem {
	return b.items
}

// Total returns the draft total in paise: the sum of unit price times
// quantity over all current lines.
func (b *BillBuilder) Total() int64 {
	var total int64
	for _, item := range b.items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// Clear drops all line items and the stall selection.
func (b *BillBuilder) Clear() {
	b.stallIDs = nil
	b.items = nil
}
