package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"siteflow-quote/internal/errors"
	"siteflow-quote/internal/logging"
)

// Format is a catalog document encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath infers the document format from the file extension
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".hcl":
		return FormatHCL, true
	default:
		return "", false
	}
}

// Load reads and decodes a catalog file.
// Read failures are CATALOG_UNAVAILABLE, everything else CATALOG_MALFORMED.
func Load(path string) (*Catalog, error) {
	format, ok := FormatFromPath(path)
	if !ok {
		return nil, errors.CatalogMalformed(fmt.Sprintf("unsupported catalog extension %q", filepath.Ext(path)), nil).
			WithContext("path", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.CatalogUnavailable(path, err)
	}

	cat, err := Parse(data, format)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e.WithContext("path", path)
		}
		return nil, err
	}

	log := logging.Named("catalog")
	for _, p := range cat.Validate(DefaultValidationRules()) {
		log.Warn("price catalog inconsistency", zap.String("path", path), zap.Error(p))
	}

	stats := cat.Stats()
	log.Info("price catalog loaded",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("hourly_rates", stats.HourlyRates),
		zap.Int("ownership_models", stats.OwnershipModels),
		zap.Int("hosting_packages", stats.HostingPackages),
		zap.Int("support_packages", stats.SupportPackages),
		zap.Int("packaged_services", stats.PackagedServices),
	)
	return cat, nil
}

// Parse decodes an in-memory catalog document
func Parse(data []byte, format Format) (*Catalog, error) {
	var (
		doc document
		err error
	)
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &doc)
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatHCL:
		doc, err = decodeHCL(data)
	default:
		return nil, errors.CatalogMalformed(fmt.Sprintf("unsupported catalog format %q", format), nil)
	}
	if err != nil {
		return nil, errors.CatalogMalformed(fmt.Sprintf("cannot decode %s catalog", format), err)
	}

	d, err := doc.toData()
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// document mirrors the published price list layout.
// Pointers distinguish absent fields from zero values. Amounts decode
// straight from the document text, so no digits go through float64.
type document struct {
	Company struct {
		Name     string           `json:"name" yaml:"name"`
		Currency string           `json:"currency" yaml:"currency"`
		VATRate  *decimal.Decimal `json:"vat_rate" yaml:"vat_rate"`
	} `json:"company" yaml:"company"`

	HourlyRates struct {
		Rates []rateDoc `json:"rates" yaml:"rates"`
	} `json:"hourly_rates" yaml:"hourly_rates"`

	CodeOwnership struct {
		Models []ownershipDoc `json:"models" yaml:"models"`
	} `json:"code_ownership" yaml:"code_ownership"`

	Hosting struct {
		Packages []hostingDoc `json:"packages" yaml:"packages"`
	} `json:"hosting" yaml:"hosting"`

	Support struct {
		Packages []supportDoc `json:"packages" yaml:"packages"`
	} `json:"support" yaml:"support"`

	PackagedServices struct {
		Services []serviceDoc `json:"services" yaml:"services"`
	} `json:"packaged_services" yaml:"packaged_services"`
}

type rateDoc struct {
	Role         string           `json:"role" yaml:"role"`
	PricePerHour *decimal.Decimal `json:"price_per_hour" yaml:"price_per_hour"`
}

type ownershipDoc struct {
	Name        string           `json:"name" yaml:"name"`
	Description string           `json:"description" yaml:"description"`
	Multiplier  *decimal.Decimal `json:"multiplier" yaml:"multiplier"`
}

type hostingDoc struct {
	Name  string           `json:"name" yaml:"name"`
	Specs map[string]any   `json:"specs" yaml:"specs"`
	Costs *hostingCostsDoc `json:"costs" yaml:"costs"`
}

type hostingCostsDoc struct {
	FlyioMonthly              *decimal.Decimal `json:"flyio_monthly" yaml:"flyio_monthly"`
	SiteflowManagementMonthly *decimal.Decimal `json:"siteflow_management_monthly" yaml:"siteflow_management_monthly"`
	TotalMonthly              *decimal.Decimal `json:"total_monthly" yaml:"total_monthly"`
}

type supportDoc struct {
	Name                    string           `json:"name" yaml:"name"`
	PriceMonthly            *decimal.Decimal `json:"price_monthly" yaml:"price_monthly"`
	SLAResponseTime         string           `json:"sla_response_time" yaml:"sla_response_time"`
	DevelopmentHoursMonthly *decimal.Decimal `json:"development_hours_monthly" yaml:"development_hours_monthly"`
}

type serviceDoc struct {
	Name     string           `json:"name" yaml:"name"`
	PriceMin *decimal.Decimal `json:"price_min" yaml:"price_min"`
	PriceMax *decimal.Decimal `json:"price_max" yaml:"price_max"`
	Duration string           `json:"duration" yaml:"duration"`
	Scope    []string         `json:"scope" yaml:"scope"`
}

// toData checks presence of every field a query needs and converts amounts
func (doc *document) toData() (Data, error) {
	var d Data

	if doc.Company.VATRate == nil {
		return Data{}, errors.MissingField("company.vat_rate")
	}
	d.Company = Company{
		Name:     doc.Company.Name,
		Currency: doc.Company.Currency,
		VATRate:  *doc.Company.VATRate,
	}

	for i, r := range doc.HourlyRates.Rates {
		if r.Role == "" {
			return Data{}, errors.MissingField(fmt.Sprintf("hourly_rates.rates[%d].role", i))
		}
		if r.PricePerHour == nil {
			return Data{}, errors.MissingField(fmt.Sprintf("hourly_rates.rates[%d].price_per_hour", i))
		}
		d.HourlyRates = append(d.HourlyRates, HourlyRate{
			Role:         r.Role,
			PricePerHour: *r.PricePerHour,
		})
	}

	for i, m := range doc.CodeOwnership.Models {
		if m.Name == "" {
			return Data{}, errors.MissingField(fmt.Sprintf("code_ownership.models[%d].name", i))
		}
		model := OwnershipModel{Name: m.Name, Description: m.Description}
		if m.Multiplier != nil {
			v := *m.Multiplier
			model.Multiplier = &v
		}
		d.OwnershipModels = append(d.OwnershipModels, model)
	}

	for i, p := range doc.Hosting.Packages {
		if p.Name == "" {
			return Data{}, errors.MissingField(fmt.Sprintf("hosting.packages[%d].name", i))
		}
		if p.Costs == nil || p.Costs.TotalMonthly == nil {
			return Data{}, errors.MissingField(fmt.Sprintf("hosting.packages[%d].costs.total_monthly", i))
		}
		d.HostingPackages = append(d.HostingPackages, HostingPackage{
			Name:  p.Name,
			Specs: p.Specs,
			Costs: HostingCosts{
				FlyioMonthly:              amount(p.Costs.FlyioMonthly),
				SiteflowManagementMonthly: amount(p.Costs.SiteflowManagementMonthly),
				TotalMonthly:              amount(p.Costs.TotalMonthly),
			},
		})
	}

	for i, p := range doc.Support.Packages {
		if p.Name == "" {
			return Data{}, errors.MissingField(fmt.Sprintf("support.packages[%d].name", i))
		}
		if p.PriceMonthly == nil {
			return Data{}, errors.MissingField(fmt.Sprintf("support.packages[%d].price_monthly", i))
		}
		d.SupportPackages = append(d.SupportPackages, SupportPackage{
			Name:                    p.Name,
			PriceMonthly:            amount(p.PriceMonthly),
			SLAResponseTime:         p.SLAResponseTime,
			DevelopmentHoursMonthly: amount(p.DevelopmentHoursMonthly),
		})
	}

	for i, s := range doc.PackagedServices.Services {
		if s.Name == "" {
			return Data{}, errors.MissingField(fmt.Sprintf("packaged_services.services[%d].name", i))
		}
		if s.PriceMin == nil {
			return Data{}, errors.MissingField(fmt.Sprintf("packaged_services.services[%d].price_min", i))
		}
		if s.PriceMax == nil {
			return Data{}, errors.MissingField(fmt.Sprintf("packaged_services.services[%d].price_max", i))
		}
		d.PackagedServices = append(d.PackagedServices, PackagedService{
			Name:     s.Name,
			PriceMin: amount(s.PriceMin),
			PriceMax: amount(s.PriceMax),
			Duration: s.Duration,
			Scope:    s.Scope,
		})
	}

	return d, nil
}

// amount converts an optional number, absent meaning zero
func amount(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
