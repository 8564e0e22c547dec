package quote

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"siteflow-quote/internal/errors"
)

// ProjectCost is the cost breakdown of hours worked by one role
type ProjectCost struct {
	Role           string          `json:"role"`
	Hours          decimal.Decimal `json:"hours"`
	HourlyRate     decimal.Decimal `json:"hourly_rate"`
	BaseCost       decimal.Decimal `json:"base_cost"`
	OwnershipModel string          `json:"ownership_model"`
	Multiplier     decimal.Decimal `json:"multiplier"`
	FinalCost      decimal.Decimal `json:"final_cost"`
	VAT            decimal.Decimal `json:"vat"`
	TotalWithVAT   decimal.Decimal `json:"total_with_vat"`
}

// ProjectCost prices hours of work by role under an ownership model.
//
// ownership is one of OwnershipLicense, OwnershipShared, OwnershipFull or a
// literal catalog model name. A model that cannot be resolved, or that has
// no multiplier, is priced at multiplier 1 and echoed back by identifier;
// with WithStrictOwnership it is an OWNERSHIP_MODEL_NOT_FOUND error instead.
func (c *Calculator) ProjectCost(hours decimal.Decimal, role, ownership string) (ProjectCost, error) {
	if hours.IsNegative() {
		return ProjectCost{}, errors.Input("hours must not be negative: "+hours.String()).
			WithContext("hours", hours.String())
	}

	rate, ok := c.catalog.HourlyRate(role)
	if !ok {
		return ProjectCost{}, errors.RoleNotFound(role)
	}

	multiplier, modelName, err := c.resolveOwnership(ownership)
	if err != nil {
		return ProjectCost{}, err
	}

	vatRate := c.catalog.VATRate()
	base := hours.Mul(rate.PricePerHour)
	final := base.Mul(multiplier)

	result := ProjectCost{
		Role:           role,
		Hours:          hours,
		HourlyRate:     rate.PricePerHour,
		BaseCost:       base,
		OwnershipModel: modelName,
		Multiplier:     multiplier,
		FinalCost:      final,
		VAT:            final.Mul(vatRate),
		TotalWithVAT:   final.Mul(decimal.NewFromInt(1).Add(vatRate)),
	}

	c.log.Debug("project cost",
		zap.String("role", role),
		zap.String("hours", hours.String()),
		zap.String("ownership_model", modelName),
		zap.String("final_cost", final.String()),
	)
	return result, nil
}

func (c *Calculator) resolveOwnership(id string) (decimal.Decimal, string, error) {
	name := OwnershipName(id)
	if model, ok := c.catalog.OwnershipModel(name); ok && model.HasMultiplier() {
		return *model.Multiplier, model.Name, nil
	}

	if c.strictOwnership {
		return decimal.Decimal{}, "", errors.OwnershipNotFound(id)
	}

	c.log.Warn("ownership model not in catalog, using multiplier 1",
		zap.String("ownership_model", id),
		zap.String("resolved_name", name),
	)
	return decimal.NewFromInt(1), id, nil
}

// OwnershipVariant is an amount priced under one ownership model
type OwnershipVariant struct {
	Model      string          `json:"model"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Amount     decimal.Decimal `json:"amount"`
}

// OwnershipVariants prices base under every catalog ownership model that
// carries a multiplier, in catalog order
func (c *Calculator) OwnershipVariants(base decimal.Decimal) []OwnershipVariant {
	var out []OwnershipVariant
	for _, m := range c.catalog.OwnershipModels() {
		if !m.HasMultiplier() {
			continue
		}
		out = append(out, OwnershipVariant{
			Model:      m.Name,
			Multiplier: *m.Multiplier,
			Amount:     base.Mul(*m.Multiplier),
		})
	}
	return out
}
