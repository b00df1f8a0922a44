package payload

import (
	"fmt"
	"strconv"

	"pagseguro_gateway/internal/domain/entities"
)

// BuildPreApprovalPayment renders the flat, index-suffixed body charging an existing
// pre-approval. Items are numbered from 1 in input order.
func BuildPreApprovalPayment(state entities.TransactionState, extra RequestMap, opts Options) RequestMap {
	params := make(RequestMap, len(extra)+2+6*len(state.Items))
	for k, v := range extra {
		params[k] = v
	}

	if state.Reference != "" {
		params["reference"] = opts.ReferencePrefix.Format(state.Reference)
	}
	params["preApprovalCode"] = state.PreApprovalCode

	for i, item := range state.Items {
		n := strconv.Itoa(i + 1)
		params["itemId"+n] = item.ID
		params["itemDescription"+n] = item.Description
		params["itemAmount"+n] = decimalAmount(item.Amount)
		params["itemQuantity"+n] = item.Quantity
		params["itemWeight"+n] = item.Weight
		params["itemShippingCost"+n] = decimalAmount(item.ShippingCost)
	}

	return Prune(params)
}

// decimalAmount formats cents the way the legacy API expects amounts ("10.50").
// Zero is returned as nil so pruning drops it.
func decimalAmount(cents int64) any {
	if cents == 0 {
		return nil
	}
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
