package router

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"bytebowl/internal/core/application/usecases/commands"
	"bytebowl/internal/core/domain/model/menu"
	"bytebowl/internal/core/domain/model/order"
	"bytebowl/internal/pkg/errs"
)

// Parameters is the decoded parameter object of one webhook event. Values
// arrive as generic JSON: lists or scalars, numbers or strings, depending on
// how the NLP engine resolved the utterance.
type Parameters = map[string]any

// numberWords covers the spelled-out quantities the NLP engine passes
// through verbatim instead of resolving to numbers.
var numberWords = map[string]int{
	"a": 1, "an": 1,
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// parseQuantity turns one extracted quantity value into a positive count.
// Accepts JSON numbers, numeric strings and number-words ("a", "two").
func parseQuantity(v any) (int, error) {
	switch q := v.(type) {
	case float64:
		if q <= 0 || q != math.Trunc(q) {
			return 0, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%v is not a positive whole number", q))
		}
		return int(q), nil
	case int:
		if q <= 0 {
			return 0, errs.NewValueIsInvalidErrorWithCause("quantity",
				fmt.Errorf("%d is not greater than 0", q))
		}
		return q, nil
	case string:
		w := strings.ToLower(strings.TrimSpace(q))
		if n, ok := numberWords[w]; ok {
			return n, nil
		}
		f, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return 0, errs.NewValueIsInvalidErrorWithCause("quantity", err)
		}
		return parseQuantity(f)
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("unsupported value %v", v))
	}
}

// collectValues flattens one parameter that may be absent, a scalar or a
// list into a slice.
func collectValues(params Parameters, key string) []any {
	raw, ok := params[key]
	if !ok || raw == nil {
		return nil
	}
	if list, ok := raw.([]any); ok {
		return list
	}
	return []any{raw}
}

// extractFoodItems reads the food_items parameter as normalized names.
func extractFoodItems(params Parameters) ([]string, error) {
	values := collectValues(params, "food_items")
	if len(values) == 0 {
		return nil, errs.NewValueIsRequiredError("food_items")
	}
	names := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("food_items",
				fmt.Errorf("unsupported value %v", v))
		}
		name := menu.NormalizeName(s)
		if name == "" {
			return nil, errs.NewValueIsRequiredError("food item name")
		}
		names = append(names, name)
	}
	return names, nil
}

// extractQuantities reads the number and number1 parameters in order. The
// engine splits quantities across both when an utterance mixes resolved and
// literal numbers.
func extractQuantities(params Parameters) ([]int, error) {
	values := collectValues(params, "number")
	values = append(values, collectValues(params, "number1")...)
	quantities := make([]int, 0, len(values))
	for _, v := range values {
		q, err := parseQuantity(v)
		if err != nil {
			return nil, err
		}
		quantities = append(quantities, q)
	}
	return quantities, nil
}

// ExtractItems pairs food_items with their quantities for an add event.
// Every item needs exactly one quantity; a mismatch means the utterance was
// not understood.
func ExtractItems(params Parameters) ([]commands.ItemQuantity, error) {
	names, err := extractFoodItems(params)
	if err != nil {
		return nil, err
	}
	quantities, err := extractQuantities(params)
	if err != nil {
		return nil, err
	}
	if len(names) != len(quantities) {
		return nil, errs.NewValueIsInvalidErrorWithCause("parameters",
			fmt.Errorf("%d food items but %d quantities", len(names), len(quantities)))
	}

	items := make([]commands.ItemQuantity, 0, len(names))
	for i, name := range names {
		items = append(items, commands.ItemQuantity{Name: name, Quantity: quantities[i]})
	}
	return items, nil
}

// ExtractRemovals pairs food_items with quantities for a remove event.
// Unlike adds, a missing quantity defaults to one ("remove the samosa").
func ExtractRemovals(params Parameters) ([]commands.ItemQuantity, error) {
	names, err := extractFoodItems(params)
	if err != nil {
		return nil, err
	}
	quantities, err := extractQuantities(params)
	if err != nil {
		return nil, err
	}
	if len(quantities) > len(names) {
		return nil, errs.NewValueIsInvalidErrorWithCause("parameters",
			fmt.Errorf("%d food items but %d quantities", len(names), len(quantities)))
	}

	items := make([]commands.ItemQuantity, 0, len(names))
	for i, name := range names {
		quantity := 1
		if i < len(quantities) {
			quantity = quantities[i]
		}
		items = append(items, commands.ItemQuantity{Name: name, Quantity: quantity})
	}
	return items, nil
}

// ExtractOrderID reads the order_id parameter for a tracking event.
func ExtractOrderID(params Parameters) (order.ID, error) {
	values := collectValues(params, "order_id")
	if len(values) == 0 {
		return 0, errs.NewValueIsRequiredError("order_id")
	}
	n, err := parseQuantity(values[0])
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order_id", err)
	}
	return order.ID(n), nil
}
