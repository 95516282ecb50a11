package domain

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"
)

// Keys recognized by ParsePropertySearchOptions.
const (
	OptionCity                 = "city"
	OptionMinimumPricePerNight = "minimum_price_per_night"
	OptionMaximumPricePerNight = "maximum_price_per_night"
	OptionRating               = "rating"
)

// PropertySearchOptions filters a property search. A nil pointer or empty
// City means the filter is absent. Prices are in whole currency units.
type PropertySearchOptions struct {
	City                 string   `validate:"max=255"`
	MinimumPricePerNight *float64 `validate:"omitempty,gte=0"`
	MaximumPricePerNight *float64 `validate:"omitempty,gte=0"`
	Rating               *float64 `validate:"omitempty,gte=0,lte=5"`
}

// Validate checks option ranges, including that the minimum price does not
// exceed the maximum when both are given. Non-finite values and prices above
// MaxPricePerNight are reported as ErrInvalidSearchOption.
func (o PropertySearchOptions) Validate() error {
	prices := []struct {
		key   string
		value *float64
	}{
		{OptionMinimumPricePerNight, o.MinimumPricePerNight},
		{OptionMaximumPricePerNight, o.MaximumPricePerNight},
	}
	for _, price := range prices {
		if price.value != nil && !ValidPrice(*price.value) {
			return fmt.Errorf("%w: %s=%v is out of range", ErrInvalidSearchOption, price.key, *price.value)
		}
	}
	if o.Rating != nil && (math.IsNaN(*o.Rating) || math.IsInf(*o.Rating, 0)) {
		return fmt.Errorf("%w: %s=%v", ErrInvalidSearchOption, OptionRating, *o.Rating)
	}

	if err := validateStruct(o); err != nil {
		return err
	}

	if o.MinimumPricePerNight != nil && o.MaximumPricePerNight != nil &&
		*o.MinimumPricePerNight > *o.MaximumPricePerNight {
		return fmt.Errorf("%w: minimum price per night exceeds maximum", ErrValidation)
	}

	return nil
}

// ParsePropertySearchOptions builds options from caller-supplied string values,
// such as a decoded query string. Unknown keys and empty values are ignored.
func ParsePropertySearchOptions(values map[string]string) (PropertySearchOptions, error) {
	var opts PropertySearchOptions

	opts.City = strings.TrimSpace(values[OptionCity])

	numeric := []struct {
		key string
		dst **float64
	}{
		{OptionMinimumPricePerNight, &opts.MinimumPricePerNight},
		{OptionMaximumPricePerNight, &opts.MaximumPricePerNight},
		{OptionRating, &opts.Rating},
	}

	for _, field := range numeric {
		raw := strings.TrimSpace(values[field.key])
		if raw == "" {
			continue
		}

		v, err := cast.ToFloat64E(raw)
		if err != nil {
			return PropertySearchOptions{}, fmt.Errorf("%w: %s=%q", ErrInvalidSearchOption, field.key, raw)
		}
		*field.dst = &v
	}

	if err := opts.Validate(); err != nil {
		return PropertySearchOptions{}, err
	}

	return opts, nil
}

// Float64 returns a pointer to v, for building options in code.
func Float64(v float64) *float64 {
	return &v
}
