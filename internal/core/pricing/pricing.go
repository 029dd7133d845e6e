// Package pricing computes base prices and surcharges for product
// configurations. All functions are pure.
package pricing

import (
	"fmt"
	"unicode/utf8"

	"github.com/govalues/decimal"
	"github.com/merchstudio/customizer/internal/core/domain"
)

// textSurchargeRunes is the custom-text length above which the flat text
// surcharge applies.
const textSurchargeRunes = 8

var (
	textSurcharge  = decimal.MustParse("5")
	imageSurcharge = decimal.MustParse("10")
)

var tshirtPrices = map[domain.Material]map[domain.Color]decimal.Decimal{
	domain.MaterialLightCotton: {
		domain.ColorBlack: decimal.MustParse("16.95"),
		domain.ColorWhite: decimal.MustParse("16.95"),
		domain.ColorGreen: decimal.MustParse("18.95"),
		domain.ColorRed:   decimal.MustParse("18.95"),
	},
	domain.MaterialHeavyCotton: {
		domain.ColorBlack: decimal.MustParse("19.95"),
		domain.ColorWhite: decimal.MustParse("19.95"),
		domain.ColorGreen: decimal.MustParse("21.95"),
		domain.ColorRed:   decimal.MustParse("21.95"),
	},
}

var sweaterPrices = map[domain.Color]decimal.Decimal{
	domain.ColorBlack:  decimal.MustParse("28.95"),
	domain.ColorWhite:  decimal.MustParse("28.95"),
	domain.ColorPink:   decimal.MustParse("32.95"),
	domain.ColorYellow: decimal.MustParse("32.95"),
}

// BasePrice looks up the tabulated price for a product configuration.
// T-shirts without a material default to light cotton. A combination
// absent from the table prices at zero rather than failing, matching the
// storefront's behavior.
func BasePrice(product domain.ProductType, material domain.Material, color domain.Color) decimal.Decimal {
	if product == domain.ProductTypeTShirt {
		m := material
		if m == "" {
			m = domain.MaterialLightCotton
		}
		return tshirtPrices[m][color]
	}
	return sweaterPrices[color]
}

// TextSurcharge returns the flat surcharge for custom text longer than
// eight characters, zero otherwise.
func TextSurcharge(customText string) decimal.Decimal {
	if utf8.RuneCountInString(customText) > textSurchargeRunes {
		return textSurcharge
	}
	return decimal.Zero
}

// ImageSurcharge returns the flat surcharge for an attached image.
func ImageSurcharge(hasImage bool) decimal.Decimal {
	if hasImage {
		return imageSurcharge
	}
	return decimal.Zero
}

// Quote prices a configuration: base table price plus text and image
// surcharges.
func Quote(product domain.ProductType, material domain.Material, color domain.Color,
	customText string, hasImage bool) (base, total decimal.Decimal, err error) {
	base = BasePrice(product, material, color)

	total, err = base.Add(TextSurcharge(customText))
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("math error:%w", err)
	}
	total, err = total.Add(ImageSurcharge(hasImage))
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("math error:%w", err)
	}

	return base, total, nil
}
