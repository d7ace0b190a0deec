package service

import (
	"testing"

	"github.com/eventdesk/eventdesk-api/internal/domain/entity"
	"github.com/google/uuid"
)

func testProduct(name string, sellingPrice int64) *entity.Product {
	return &entity.Product{
		ID:           uuid.New(),
		ItemName:     name,
		SellingPrice: &sellingPrice,
	}
}

func TestBillBuilder_AddItemMergesSameProduct(t *testing.T) {
	builder := NewBillBuilder()
	tea := testProduct("Tea", 1000)

	builder.AddItem(tea)
	builder.AddItem(tea)
	builder.AddItem(tea)

	items := builder.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 line after adding the same product 3 times, got %d", len(items))
	}
	if items[0].Quantity != 3 {
		t.Errorf("Expected quantity 3, got %d", items[0].Quantity)
	}
	if items[0].Total != 3000 {
		t.Errorf("Expected line total 3000, got %d", items[0].Total)
	}
}

func TestBillBuilder_AddItemDistinctProducts(t *testing.T) {
	builder := NewBillBuilder()
	tea := testProduct("Tea", 1000)
	samosa := testProduct("Samosa", 1500)

	builder.AddItem(tea)
	builder.AddItem(samosa)
	builder.AddItem(tea)

	items := builder.Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(items))
	}
	// First added product keeps its position
	if items[0].ProductID != tea.ID || items[0].Quantity != 2 {
		t.Errorf("Expected tea first with quantity 2, got %s qty %d", items[0].Name, items[0].Quantity)
	}
	if items[1].ProductID != samosa.ID || items[1].Quantity != 1 {
		t.Errorf("Expected samosa second with quantity 1, got %s qty %d", items[1].Name, items[1].Quantity)
	}
}

func TestBillBuilder_MissingSellingPriceBillsAsZero(t *testing.T) {
	builder := NewBillBuilder()
	unpriced := &entity.Product{ID: uuid.New(), ItemName: "Sample"}

	builder.AddItem(unpriced)

	items := builder.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(items))
	}
	if items[0].UnitPrice != 0 || items[0].Total != 0 {
		t.Errorf("Expected zero-priced line, got unit %d total %d", items[0].UnitPrice, items[0].Total)
	}
}

func TestBillBuilder_SetQuantity(t *testing.T) {
	tea := testProduct("Tea", 1000)

	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{name: "raise quantity", quantity: 5, wantLines: 1, wantQty: 5},
		{name: "zero removes the line", quantity: 0, wantLines: 0},
		{name: "negative removes the line", quantity: -3, wantLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := NewBillBuilder()
			builder.AddItem(tea)

			builder.SetQuantity(tea.ID, tt.quantity)

			items := builder.Items()
			if len(items) != tt.wantLines {
				t.Fatalf("Expected %d lines, got %d", tt.wantLines, len(items))
			}
			if tt.wantLines > 0 && items[0].Quantity != tt.wantQty {
				t.Errorf("Expected quantity %d, got %d", tt.wantQty, items[0].Quantity)
			}
		})
	}
}

func TestBillBuilder_SetQuantityUnknownProductIsNoop(t *testing.T) {
	builder := NewBillBuilder()
	builder.AddItem(testProduct("Tea", 1000))

	builder.SetQuantity(uuid.New(), 4)

	if len(builder.Items()) != 1 {
		t.Fatalf("Expected existing line untouched, got %d lines", len(builder.Items()))
	}
	if builder.Items()[0].Quantity != 1 {
		t.Errorf("Expected quantity 1, got %d", builder.Items()[0].Quantity)
	}
}

func TestBillBuilder_Total(t *testing.T) {
	builder := NewBillBuilder()
	tea := testProduct("Tea", 1000)
	samosa := testProduct("Samosa", 1500)

	if builder.Total() != 0 {
		t.Errorf("Expected empty builder total 0, got %d", builder.Total())
	}

	builder.AddItem(tea)
	builder.SetQuantity(tea.ID, 2)
	builder.AddItem(samosa)

	// 2 x 1000 + 1 x 1500
	if got := builder.Total(); got != 3500 {
		t.Errorf("Expected total 3500, got %d", got)
	}

	builder.RemoveItem(samosa.ID)
	if got := builder.Total(); got != 2000 {
		t.Errorf("Expected total 2000 after removal, got %d", got)
	}
}

func TestBillBuilder_StallSelectionIsUniqueSet(t *testing.T) {
	builder := NewBillBuilder()
	first := uuid.New()
	second := uuid.New()

	builder.SelectStall(first)
	builder.SelectStall(second)
	builder.SelectStall(first)

	selected := builder.SelectedStalls()
	if len(selected) != 2 {
		t.Fatalf("Expected 2 selected stalls, got %d", len(selected))
	}
	if selected[0] != first || selected[1] != second {
		t.Error("Expected selection order preserved by first selection")
	}

	builder.DeselectStall(first)
	selected = builder.SelectedStalls()
	if len(selected) != 1 || selected[0] != second {
		t.Errorf("Expected only second stall selected, got %v", selected)
	}
}

func TestBillBuilder_Clear(t *testing.T) {
	builder := NewBillBuilder()
	builder.SelectStall(uuid.New())
	builder.AddItem(testProduct("Tea", 1000))

	builder.Clear()

	if len(builder.Items()) != 0 || len(builder.SelectedStalls()) != 0 || builder.Total() != 0 {
		t.Error("Expected cleared builder to be empty")
	}
}
