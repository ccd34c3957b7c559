package referral

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"storefront/internal/domain"
)

var ErrNoItems = errors.New("order has no items")

const (
	// TransactionCurrency is the fixed currency code reported to the
	// referral platform.
	TransactionCurrency = "GBP"

	situationPostPurchase = "postpurchase"
	localeBritish         = "en_GB"
)

// BuildPayload maps a completed order onto the flat field set consumed
// by the referral tag endpoint. It is deterministic given its input and
// has no network responsibility.
//
// Only the first line item is carried (product_sku_1/product_qty_1);
// multi-item orders lose line detail, which is the contract the tag
// endpoint expects.
func BuildPayload(order domain.Order) (url.Values, error) {
	if len(order.Items) == 0 {
		return nil, ErrNoItems
	}

	firstname, surname := splitName(order.Customer.Name)
	first := order.Items[0]

	v := url.Values{}
	v.Set("firstname", firstname)
	v.Set("surname", surname)
	v.Set("email", order.Customer.Email)
	v.Set("signup_id", order.Customer.Email)
	v.Set("order_id", order.OrderNumber)
	v.Set("transaction_total", fmt.Sprintf("%.2f", order.Total))
	v.Set("transaction_currency", TransactionCurrency)
	v.Set("product_sku_1", first.Product.ID)
	v.Set("product_qty_1", strconv.Itoa(first.Quantity))
	v.Set("situation", situationPostPurchase)
	v.Set("locale", localeBritish)
	return v, nil
}

// splitName splits a full name on the first space. A name with no space
// yields an empty surname.
func splitName(name string) (firstname, surname string) {
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}
