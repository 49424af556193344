package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mmynk/adisyon/internal/catalog"
	"github.com/mmynk/adisyon/pkg/api"
)

func TestListTables(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := ts.pos.ListTables(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListTables failed: %v", err)
	}

	if len(resp.Msg.Tables) != 10 {
		t.Fatalf("tables: expected 10, got %d", len(resp.Msg.Tables))
	}
	for i, table := range resp.Msg.Tables {
		if table.Id != i+1 {
			t.Errorf("table %d: expected id %d", table.Id, i+1)
		}
		if table.Status != "vacant" || !table.Total.IsZero() {
			t.Errorf("table %d: expected vacant with zero total, got %s/%s", table.Id, table.Status, table.Total)
		}
	}
	if resp.Msg.OccupiedCount != 0 {
		t.Errorf("occupied: expected 0, got %d", resp.Msg.OccupiedCount)
	}
}

func TestListMenu(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()

	resp, err := ts.pos.ListMenu(context.Background(), connect.NewRequest(&emptypb.Empty{}))
	if err != nil {
		t.Fatalf("ListMenu failed: %v", err)
	}

	count := 0
	for _, category := range resp.Msg.Categories {
		if len(category.Items) == 0 {
			t.Errorf("category %q has no items", category.Name)
		}
		for _, item := range category.Items {
			if item.Category != category.Name {
				t.Errorf("item %q listed under %q", item.Name, category.Name)
			}
		}
		count += len(category.Items)
	}
	if count != len(catalog.DefaultMenu()) {
		t.Errorf("items: expected %d, got %d", len(catalog.DefaultMenu()), count)
	}
}

func TestAddOrderItem(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := ts.pos.AddOrderItem(ctx, connect.NewRequest(&api.AddOrderItemRequest{TableId: 5, ItemId: 1})); err != nil {
			t.Fatalf("AddOrderItem failed: %v", err)
		}
	}

	resp, err := ts.pos.GetTable(ctx, connect.NewRequest(&api.GetTableRequest{TableId: 5}))
	if err != nil {
		t.Fatalf("GetTable failed: %v", err)
	}

	table := resp.Msg.Table
	if table.Status != "occupied" {
		t.Errorf("status: expected occupied, got %s", table.Status)
	}
	if !table.Total.Equal(decimal.NewFromInt(90)) {
		t.Errorf("total: expected 90, got %s", table.Total)
	}
	if len(table.Orders) != 2 || table.Orders[0].OrderId == table.Orders[1].OrderId {
		t.Errorf("expected 2 lines with distinct order ids, got %+v", table.Orders)
	}
	if table.Orders[0].Name != "Türk Kahvesi" {
		t.Errorf("line name: expected 'Türk Kahvesi', got '%s'", table.Orders[0].Name)
	}
}

func TestAddOrderItem_Errors(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *api.AddOrderItemRequest
		code connect.Code
	}{
		{"unknown table", &api.AddOrderItemRequest{TableId: 11, ItemId: 1}, connect.CodeNotFound},
		{"table zero", &api.AddOrderItemRequest{TableId: 0, ItemId: 1}, connect.CodeNotFound},
		{"unknown item", &api.AddOrderItemRequest{TableId: 1, ItemId: 9999}, connect.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.pos.AddOrderItem(ctx, connect.NewRequest(tt.req))
			assertCode(t, err, tt.code)
		})
	}
}

func TestAddOrderItem_OutOfStock(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := ts.cafe.UpdateStock(ctx, 1, 1); err != nil {
		t.Fatalf("UpdateStock failed: %v", err)
	}

	if _, err := ts.pos.AddOrderItem(ctx, connect.NewRequest(&api.AddOrderItemRequest{TableId: 1, ItemId: 1})); err != nil {
		t.Fatalf("first AddOrderItem failed: %v", err)
	}
	_, err := ts.pos.AddOrderItem(ctx, connect.NewRequest(&api.AddOrderItemRequest{TableId: 1, ItemId: 1}))
	assertCode(t, err, connect.CodeFailedPrecondition)

	resp, _ := ts.pos.GetTable(ctx, connect.NewRequest(&api.GetTableRequest{TableId: 1}))
	if len(resp.Msg.Table.Orders) != 1 {
		t.Errorf("lines: expected 1, got %d", len(resp.Msg.Table.Orders))
	}
}

func TestRemoveOrderItem(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	addResp, err := ts.pos.AddOrderItem(ctx, connect.NewRequest(&api.AddOrderItemRequest{TableId: 2, ItemId: 2}))
	if err != nil {
		t.Fatalf("AddOrderItem failed: %v", err)
	}
	stockAfterAdd, _ := ts.cafe.MenuItem(2)

	t.Run("unknown line is a no-op", func(t *testing.T) {
		resp, err := ts.pos.RemoveOrderItem(ctx, connect.NewRequest(&api.RemoveOrderItemRequest{TableId: 2, OrderId: "nope"}))
		if err != nil {
			t.Fatalf("RemoveOrderItem failed: %v", err)
		}
		if resp.Msg.Removed || len(resp.Msg.Table.Orders) != 1 {
			t.Errorf("expected no change, got removed=%v lines=%d", resp.Msg.Removed, len(resp.Msg.Table.Orders))
		}
	})

	t.Run("removes line and restores stock", func(t *testing.T) {
		resp, err := ts.pos.RemoveOrderItem(ctx, connect.NewRequest(&api.RemoveOrderItemRequest{
			TableId: 2,
			OrderId: addResp.Msg.Line.OrderId,
		}))
		if err != nil {
			t.Fatalf("RemoveOrderItem failed: %v", err)
		}
		if !resp.Msg.Removed {
			t.Error("expected removed=true")
		}
		if resp.Msg.Table.Status != "vacant" || !resp.Msg.Table.Total.IsZero() {
			t.Errorf("expected vacant table, got %s/%s", resp.Msg.Table.Status, resp.Msg.Table.Total)
		}
		item, _ := ts.cafe.MenuItem(2)
		if item.Stock != stockAfterAdd.Stock+1 {
			t.Errorf("stock: expected %d, got %d", stockAfterAdd.Stock+1, item.Stock)
		}
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := ts.pos.RemoveOrderItem(ctx, connect.NewRequest(&api.RemoveOrderItemRequest{TableId: 42, OrderId: "x"}))
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestCloseBill(t *testing.T) {
	ts, cleanup := setupTestServer(t)
	defer cleanup()
	ctx := context.Background()

	ts.pos.AddOrderItem(ctx, connect.NewRequest(&api.AddOrderItemRequest{TableId: 3, ItemId: 1}))
	ts.pos.AddOrderItem(ctx, connect.NewRequest(&api.AddOrderItemRequest{TableId: 3, ItemId: 1}))

	t.Run("payment method required", func(t *testing.T) {
		_, err := ts.pos.CloseBill(ctx, connect.NewRequest(&api.CloseBillRequest{TableId: 3}))
		assertCode(t, err, connect.CodeInvalidArgument)

		resp, _ := ts.pos.GetTable(ctx, connect.NewRequest(&api.GetTableRequest{TableId: 3}))
		if resp.Msg.Table.Status != "occupied" {
			t.Error("rejected close should leave the table occupied")
		}
	})

	t.Run("records sale", func(t *testing.T) {
		resp, err := ts.pos.CloseBill(ctx, connect.NewRequest(&api.CloseBillRequest{TableId: 3, PaymentMethod: "Card"}))
		if err != nil {
			t.Fatalf("CloseBill failed: %v", err)
		}
		if resp.Msg.Sale == nil {
			t.Fatal("expected sale in response")
		}
		if !resp.Msg.Sale.Amount.Equal(decimal.NewFromInt(90)) {
			t.Errorf("amount: expected 90, got %s", resp.Msg.Sale.Amount)
		}
		if resp.Msg.Sale.PaymentMethod != "Card" || resp.Msg.Sale.Id == "" {
			t.Errorf("unexpected sale %+v", resp.Msg.Sale)
		}
		if resp.Msg.Table.Status != "vacant" || len(resp.Msg.Table.Orders) != 0 {
			t.Errorf("expected reset table, got %+v", resp.Msg.Table)
		}
	})

	t.Run("vacant table records nothing", func(t *testing.T) {
		resp, err := ts.pos.CloseBill(ctx, connect.NewRequest(&api.CloseBillRequest{TableId: 3, PaymentMethod: "Cash"}))
		if err != nil {
			t.Fatalf("CloseBill failed: %v", err)
		}
		if resp.Msg.Sale != nil {
			t.Errorf("expected no sale, got %+v", resp.Msg.Sale)
		}
		if got := len(ts.cafe.Sales()); got != 1 {
			t.Errorf("sales: expected 1, got %d", got)
		}
	})
}
