package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type ProductType string

const (
	ProductTypeTShirt  ProductType = "tshirt"
	ProductTypeSweater ProductType = "sweater"
)

type Material string

const (
	MaterialLightCotton Material = "light-cotton"
	MaterialHeavyCotton Material = "heavy-cotton"
)

type Color string

const (
	ColorBlack  Color = "black"
	ColorWhite  Color = "white"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorPink   Color = "pink"
	ColorYellow Color = "yellow"
)

// Order is a priced product configuration. Prices are stored in the base
// currency and recomputed on every mutation.
type Order struct {
	ID          string
	ProductType ProductType
	Material    Material // t-shirts only, empty for sweaters
	Color       Color
	CustomText  string
	ImageURL    string
	BasePrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderUpdate carries the mutable subset of an order for partial updates.
// Nil fields are left untouched. ProductType is immutable after creation.
type OrderUpdate struct {
	Material   *Material
	Color      *Color
	CustomText *string
	ImageURL   *string
}
