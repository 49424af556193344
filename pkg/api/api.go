// Package api defines the request and response messages of the adisyon.v1
// Connect services. Messages travel as JSON; money fields are decimal
// strings so that no precision is lost on the wire.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a sellable catalog entry.
type MenuItem struct {
	Id       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
}

// MenuCategory groups menu items for display.
type MenuCategory struct {
	Name  string      `json:"name"`
	Items []*MenuItem `json:"items"`
}

// OrderLine is one unit ordered at a table.
type OrderLine struct {
	OrderId  string          `json:"orderId"`
	ItemId   int64           `json:"itemId"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// Table is a seating position with its open tab.
type Table struct {
	Id     int             `json:"id"`
	Status string          `json:"status"`
	Orders []*OrderLine    `json:"orders"`
	Total  decimal.Decimal `json:"total"`
}

// Sale is a closed bill.
type Sale struct {
	Id            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
	PaymentMethod string          `json:"paymentMethod"`
}

// User is a staff account as seen by clients.
type User struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

// PosService messages.

type ListTablesResponse struct {
	Tables        []*Table `json:"tables"`
	OccupiedCount int      `json:"occupiedCount"`
}

type GetTableRequest struct {
	TableId int `json:"tableId"`
}

type GetTableResponse struct {
	Table *Table `json:"table"`
}

type ListMenuResponse struct {
	Categories []*MenuCategory `json:"categories"`
}

type AddOrderItemRequest struct {
	TableId int   `json:"tableId"`
	ItemId  int64 `json:"itemId"`
}

type AddOrderItemResponse struct {
	Table *Table     `json:"table"`
	Line  *OrderLine `json:"line"`
}

type RemoveOrderItemRequest struct {
	TableId int    `json:"tableId"`
	OrderId string `json:"orderId"`
}

type RemoveOrderItemResponse struct {
	Table *Table `json:"table"`
	// Removed is false when the table had no such line.
	Removed bool `json:"removed"`
}

type CloseBillRequest struct {
	TableId       int    `json:"tableId"`
	PaymentMethod string `json:"paymentMethod"`
}

type CloseBillResponse struct {
	Table *Table `json:"table"`
	// Sale is nil when the table owed nothing.
	Sale *Sale `json:"sale,omitempty"`
}

// AdminService messages.

type AddMenuItemRequest struct {
	Item *MenuItem `json:"item"`
}

type AddMenuItemResponse struct {
	Item *MenuItem `json:"item"`
}

type RemoveMenuItemRequest struct {
	ItemId int64 `json:"itemId"`
}

type RemoveMenuItemResponse struct {
	Removed bool `json:"removed"`
}

type UpdatePriceRequest struct {
	ItemId int64           `json:"itemId"`
	Price  decimal.Decimal `json:"price"`
}

type UpdatePriceResponse struct {
	Updated bool      `json:"updated"`
	Item    *MenuItem `json:"item,omitempty"`
}

type UpdateStockRequest struct {
	ItemId int64 `json:"itemId"`
	Stock  int   `json:"stock"`
}

type UpdateStockResponse struct {
	Updated bool      `json:"updated"`
	Item    *MenuItem `json:"item,omitempty"`
}

type ListSalesRequest struct {
	// Limit defaults to 15 when zero.
	Limit int `json:"limit"`
}

type ListSalesResponse struct {
	Sales []*Sale `json:"sales"`
}

type GetRevenueRequest struct {
	// At selects the day and month to report; now when nil.
	At *time.Time `json:"at,omitempty"`
}

type GetRevenueResponse struct {
	Daily         decimal.Decimal `json:"daily"`
	Monthly       decimal.Decimal `json:"monthly"`
	MenuItemCount int             `json:"menuItemCount"`
	SaleCount     int             `json:"saleCount"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// AuthService messages.

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}
