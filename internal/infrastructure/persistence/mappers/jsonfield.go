package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

// encodeStrings stores a string list as a JSON array column; nil becomes [].
func encodeStrings(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}
	return datatypes.JSON(raw), nil
}

func decodeStrings(raw datatypes.JSON) ([]string, error) {
	values := []string{}
	if len(raw) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal string list: %w", err)
	}
	return values, nil
}
