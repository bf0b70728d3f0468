package model

// Subscription plan tiers.
const (
	PlanBasic   = "basic"
	PlanPremium = "premium"
	PlanPro     = "pro"
)

type Plan struct {
	Type  string `json:"type"`
	Price int32  `json:"price"` // rand per month
	Name  string `json:"name"`
}

// PlanFor derives a plan from its tier. Price is a pure function of the
// tier and is never stored independently of it.
func PlanFor(planType string) (*Plan, error) {
	var price int32
	var name string
	switch planType {
	case PlanBasic:
		price, name = 299, "Basic"
	case PlanPremium:
		price, name = 499, "Premium"
	case PlanPro:
		price, name = 799, "Pro"
	default:
		return nil, Validationf("unknown plan type %q", planType)
	}

	return &Plan{
		Type:  planType,
		Price: price,
		Name:  name,
	}, nil
}
