package postgres

import (
	"encoding/json"

	"wearsync/internal/domain/entity"

	"gorm.io/datatypes"
)

func toJSONColumn(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil
	}

	return datatypes.JSON(raw)
}

func stringsFromJSON(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	return values
}

func dataTypesFromJSON(raw datatypes.JSON) []entity.DataType {
	values := stringsFromJSON(raw)
	if values == nil {
		return nil
	}
	types := make([]entity.DataType, 0, len(values))
	for _, v := range values {
		types = append(types, entity.DataType(v))
	}

	return types
}

func mapFromJSON(raw datatypes.JSON) map[string]any {
	if len(raw) == 0 {
		return nil
	}
	var values map[string]any
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil
	}

	return values
}
