package dashboard

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/RaiLord005/inventory-agent-software/pkg/apiclient"
)

// ProductValidator checks an add-product payload before it is sent to the
// backend.
type ProductValidator interface {
	Validate(product apiclient.NewProduct) error
}

// newProductSchema is the local contract for POST /api/add-product. Field
// names match the wire payload.
const newProductSchema = `{
	"type": "object",
	"required": [
		"product_name", "current_stock", "safety_stock_level",
		"forecasted_demand", "lead_time_days", "annual_demand",
		"order_cost_fixed", "holding_cost_per_unit", "expiry_date"
	],
	"properties": {
		"product_name": {"type": "string", "minLength": 1},
		"current_stock": {"type": "integer", "minimum": 0},
		"safety_stock_level": {"type": "integer", "minimum": 0},
		"forecasted_demand": {"type": "integer", "minimum": 0},
		"lead_time_days": {"type": "integer", "minimum": 1},
		"annual_demand": {"type": "integer", "minimum": 0},
		"order_cost_fixed": {"type": "string", "pattern": "^[0-9]+(\\.[0-9]+)?$"},
		"holding_cost_per_unit": {"type": "string", "pattern": "^[0-9]+(\\.[0-9]+)?$"},
		"expiry_date": {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"}
	}
}`

// JSONSchemaValidator validates add-product payloads with jsonschema v5. The
// compiled schema is built once and reused.
type JSONSchemaValidator struct {
	once   sync.Once
	schema *jsonschema.Schema
	err    error
}

// NewJSONSchemaValidator builds the product payload validator.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{}
}

// Validate normalizes the product through JSON and checks it against the
// schema.
func (v *JSONSchemaValidator) Validate(product apiclient.NewProduct) error {
	schema, err := v.compiled()
	if err != nil {
		return err
	}
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("dashboard: marshal product payload: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("dashboard: normalize product payload: %w", err)
	}
	// Decimal fields marshal as JSON numbers; the schema checks their string
	// form so zero and fractional values validate uniformly.
	for _, field := range []string{"order_cost_fixed", "holding_cost_per_unit"} {
		if raw, ok := payload[field]; ok {
			payload[field] = fmt.Sprintf("%v", raw)
		}
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("dashboard: product payload failed validation: %w", err)
	}
	return nil
}

func (v *JSONSchemaValidator) compiled() (*jsonschema.Schema, error) {
	v.once.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("new-product.json", strings.NewReader(newProductSchema)); err != nil {
			v.err = fmt.Errorf("dashboard: load product schema: %w", err)
			return
		}
		v.schema, v.err = compiler.Compile("new-product.json")
	})
	return v.schema, v.err
}

type noopProductValidator struct{}

func (noopProductValidator) Validate(apiclient.NewProduct) error { return nil }
