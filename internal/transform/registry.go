package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// TransformRegistry creates transforms from string parameters for the CLI.
type TransformRegistry struct {
	factories map[string]TransformFactory
}

// TransformFactory builds a transform from parameters.
type TransformFactory func(params map[string]string) (OfferTransform, error)

// NewTransformRegistry creates a registry with the built-in transforms.
func NewTransformRegistry() *TransformRegistry {
	r := &TransformRegistry{factories: make(map[string]TransformFactory)}
	r.Register("hike", createHike)
	r.Register("set_ctc", createSetCTC)
	r.Register("relocate", createRelocate)
	r.Register("set_variable", createSetVariable)
	r.Register("set_company", createSetCompany)
	return r
}

// Register adds a factory.
func (r *TransformRegistry) Register(name string, factory TransformFactory) {
	r.factories[name] = factory
}

// Create builds a transform by name.
func (r *TransformRegistry) Create(name string, params map[string]string) (OfferTransform, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown transform: %s", name)
	}
	return factory(params)
}

// List returns the registered names, sorted.
func (r *TransformRegistry) List() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseTransformSpec parses "name:key=value;key=value".
// Example: "relocate:city=Mumbai;allowance=100000"
func (r *TransformRegistry) ParseTransformSpec(spec string) (OfferTransform, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid transform spec format, expected 'name:params', got: %s", spec)
	}

	params := make(map[string]string)
	if raw := strings.TrimSpace(parts[1]); raw != "" {
		for _, pair := range strings.Split(raw, ";") {
			kv := strings.SplitN(pair, "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("invalid parameter format, expected 'key=value', got: %s", pair)
			}
			params[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}
	return r.Create(strings.TrimSpace(parts[0]), params)
}

func amountParam(transform string, params map[string]string, key string, required bool) (decimal.Decimal, error) {
	raw, ok := params[key]
	if !ok {
		if required {
			return decimal.Zero, fmt.Errorf("%s requires '%s' parameter", transform, key)
		}
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return d, nil
}

func createHike(params map[string]string) (OfferTransform, error) {
	pct, err := amountParam("hike", params, "percent", true)
	if err != nil {
		return nil, err
	}
	return &Hike{Percent: pct}, nil
}

func createSetCTC(params map[string]string) (OfferTransform, error) {
	amt, err := amountParam("set_ctc", params, "amount", true)
	if err != nil {
		return nil, err
	}
	return &SetCTC{Amount: amt}, nil
}

func createRelocate(params map[string]string) (OfferTransform, error) {
	city, ok := params["city"]
	if !ok {
		return nil, fmt.Errorf("relocate requires 'city' parameter")
	}
	allowance, err := amountParam("relocate", params, "allowance", false)
	if err != nil {
		return nil, err
	}
	return &Relocate{City: city, Allowance: allowance}, nil
}

func createSetVariable(params map[string]string) (OfferTransform, error) {
	amt, err := amountParam("set_variable", params, "amount", true)
	if err != nil {
		return nil, err
	}
	keep := false
	if raw, ok := params["keep_ctc"]; ok {
		if keep, err = strconv.ParseBool(raw); err != nil {
			return nil, fmt.Errorf("invalid keep_ctc value: %w", err)
		}
	}
	return &SetVariable{Amount: amt, KeepCTC: keep}, nil
}

func createSetCompany(params map[string]string) (OfferTransform, error) {
	company, ok := params["company"]
	if !ok {
		return nil, fmt.Errorf("set_company requires 'company' parameter")
	}
	return &SetCompany{Company: company}, nil
}
