package clusterconf

import (
	"math"
	"time"

	"github.com/jsamuelsen11/clusterconf/internal/domain/option"
	"github.com/jsamuelsen11/clusterconf/internal/domain/override"
)

// ToDomainOption converts a wire record to a domain Option. Empty-string
// scalars become nil and whole numbers on integral types become int.
func ToDomainOption(dto *OptionDTO) option.Option {
	typ := option.Type(dto.Type)

	o := option.Option{
		Name:          dto.Name,
		Type:          typ,
		Level:         option.Level(dto.Level),
		Desc:          dto.Desc,
		LongDesc:      dto.LongDesc,
		Default:       toScalar(typ, dto.Default),
		DaemonDefault: toScalar(typ, dto.DaemonDefault),
		Tags:          dto.Tags,
		Services:      dto.Services,
		SeeAlso:       dto.SeeAlso,
		Min:           toScalar(typ, dto.Min),
		Max:           toScalar(typ, dto.Max),
		EnumValues:    dto.EnumValues,
	}

	if len(dto.Value) > 0 {
		o.Values = make([]option.Value, len(dto.Value))
		for i, v := range dto.Value {
			o.Values[i] = option.Value{Section: v.Section, Value: v.Value}
		}
		o.Source = dto.Source
	}

	return o
}

// ToDomainOptionList converts a list of wire records to domain Options.
func ToDomainOptionList(dtos []OptionDTO) []option.Option {
	opts := make([]option.Option, len(dtos))
	for i := range dtos {
		opts[i] = ToDomainOption(&dtos[i])
	}
	return opts
}

// ToDomainOverride converts an admin override record to a domain Override.
// An unparseable timestamp yields the zero time.
func ToDomainOverride(dto *OverrideDTO) override.Override {
	updatedAt, _ := time.Parse(time.RFC3339Nano, dto.UpdatedAt)

	return override.Override{
		Name:      dto.Name,
		Section:   dto.Section,
		Value:     dto.Value,
		UpdatedAt: updatedAt,
	}
}

// ToDomainOverrideList converts the admin dump to domain Overrides.
func ToDomainOverrideList(dto OverrideListResponseDTO) []override.Override {
	list := make([]override.Override, len(dto.Overrides))
	for i := range dto.Overrides {
		list[i] = ToDomainOverride(&dto.Overrides[i])
	}
	return list
}

// ToSetOverrideRequest builds the PUT body for an override value.
func ToSetOverrideRequest(value string) SetOverrideRequestDTO {
	return SetOverrideRequestDTO{Value: value}
}

func toScalar(typ option.Type, v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		if x == "" {
			return nil
		}
		return x
	case float64:
		if typ.IsNumeric() && typ != option.TypeFloat && x == math.Trunc(x) {
			return int(x)
		}
		return x
	default:
		return x
	}
}
