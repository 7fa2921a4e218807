package codes

// Order status values as stored by WooCommerce (post_status / HPOS status column).
const (
	OrderStatusPending    = "wc-pending"
	OrderStatusProcessing = "wc-processing"
	OrderStatusOnHold     = "wc-on-hold"
	OrderStatusCompleted  = "wc-completed"
	OrderStatusCancelled  = "wc-cancelled"
	OrderStatusRefunded   = "wc-refunded"
	OrderStatusFailed     = "wc-failed"
)

// RevenueRecognizedStatuses are the order states counted as real revenue.
func RevenueRecognizedStatuses() []string {
	return []string{OrderStatusCompleted, OrderStatusProcessing, OrderStatusOnHold}
}

// ExcludedStatuses are never counted, whatever the recognized set contains.
func ExcludedStatuses() []string {
	return []string{OrderStatusCancelled, OrderStatusFailed}
}
