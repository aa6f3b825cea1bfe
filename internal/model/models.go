package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	Role         Role      `db:"role" json:"role"`
	AvatarURL    *string   `db:"avatar_url" json:"avatarUrl,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Product categories shown on the storefront.
const (
	CategoryBrandNew    = "brand-new"
	CategoryUsed        = "used"
	CategoryLaptops     = "laptops"
	CategoryAccessories = "accessories"
)

type Category struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Product is a catalog entry. Colors and Storage list the variants a buyer
// can pick; an empty list means the product has no such choice.
type Product struct {
	ID            uuid.UUID        `db:"id" json:"id"`
	Name          string           `db:"name" json:"name"`
	Description   string           `db:"description" json:"description"`
	Brand         string           `db:"brand" json:"brand"`
	Badge         *string          `db:"badge" json:"badge,omitempty"`
	Price         decimal.Decimal  `db:"price" json:"price"`
	OriginalPrice *decimal.Decimal `db:"original_price" json:"originalPrice,omitempty"`
	Discount      int              `db:"discount" json:"discount"`
	Category      string           `db:"category" json:"category"`
	ImageURL      string           `db:"image_url" json:"imageUrl"`
	Colors        pq.StringArray   `db:"colors" json:"colors"`
	Storage       pq.StringArray   `db:"storage" json:"storage"`
	Rating        float64          `db:"rating" json:"rating"`
	ReviewCount   int              `db:"review_count" json:"reviewCount"`
	Featured      bool             `db:"featured" json:"featured"`
	Stock         int              `db:"stock" json:"stock"`
	CreatedAt     time.Time        `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time        `db:"updated_at" json:"updatedAt"`
}

// ProductFilter narrows a product listing. Zero values do not filter; nil
// price bounds are open.
type ProductFilter struct {
	Category string
	Search   string
	Brands   []string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	InStock  bool
	Featured bool
	Limit    int
	Offset   int
}

// CartItem is a product line in a cart. Lines are keyed by product and the
// chosen variant (color, storage).
type CartItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	Quantity  int             `json:"quantity"`
	Color     string          `json:"color,omitempty"`
	Storage   string          `json:"storage,omitempty"`
}

func (p *Product) InStock() bool {
	return p.Stock > 0
}

// HasColor reports whether color is one of the product's declared colors.
func (p *Product) HasColor(color string) bool {
	return contains(p.Colors, color)
}

// HasStorage reports whether size is one of the product's declared storage options.
func (p *Product) HasStorage(size string) bool {
	return contains(p.Storage, size)
}

func contains(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func (i CartItem) SameLine(other CartItem) bool {
	return i.ProductID == other.ProductID && i.Color == other.Color && i.Storage == other.Storage
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Cart struct {
	UserID    uuid.UUID       `json:"userId"`
	Items     []CartItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	UserID        uuid.UUID       `db:"user_id" json:"userId"`
	Status        OrderStatus     `db:"status" json:"status"`
	TotalAmount   decimal.Decimal `db:"total_amount" json:"totalAmount"`
	PaymentMethod string          `db:"payment_method" json:"paymentMethod"`
	EMIMonths     *int            `db:"emi_months" json:"emiMonths,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updatedAt"`
	Items         []OrderItem     `db:"-" json:"items"`
}

type OrderItem struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	OrderID     uuid.UUID       `db:"order_id" json:"orderId"`
	ProductID   uuid.UUID       `db:"product_id" json:"productId"`
	ProductName string          `db:"product_name" json:"productName"`
	Color       string          `db:"color" json:"color,omitempty"`
	Storage     string          `db:"storage" json:"storage,omitempty"`
	Quantity    int             `db:"quantity" json:"quantity"`
	Price       decimal.Decimal `db:"price" json:"price"`
}

type AdminSummary struct {
	ProductCount   int                 `json:"productCount"`
	OrderCount     int                 `json:"orderCount"`
	Revenue        decimal.Decimal     `json:"revenue"`
	OrdersByStatus map[OrderStatus]int `json:"ordersByStatus"`
}
