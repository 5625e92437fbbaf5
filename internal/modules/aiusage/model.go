// README: Monthly advisory-call allowance per renter.
package aiusage

import "errors"

// ErrInsufficientTokens is returned when a renter has no advisory calls
// remaining for the current month.
var ErrInsufficientTokens = errors.New("insufficient tokens")

// DefaultTokens is the number of advisory calls granted per month.
const DefaultTokens = 100

// monthKey is the layout for the lazy-reset month marker.
const monthKey = "2006-01"
