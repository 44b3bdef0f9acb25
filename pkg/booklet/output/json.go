// Package output serializes imposition plans.
package output

import (
	"encoding/json"

	"github.com/ukaji3/booklet-go/pkg/booklet/models"
)

// ToJSON serializes a single plan.
func ToJSON(plan *models.Plan, pretty bool) ([]byte, error) {
	return marshal(plan, pretty)
}

// PlansToJSON serializes plans as a JSON array in emission order.
func PlansToJSON(plans []*models.Plan, pretty bool) ([]byte, error) {
	if plans == nil {
		plans = []*models.Plan{}
	}
	return marshal(plans, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
