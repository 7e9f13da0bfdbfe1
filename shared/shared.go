package shared

import (
	"math"
	"reflect"
	"strings"
	"time"

	"hotelier/shared/constant"
	"hotelier/shared/dto"
)

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// TransformFields converts the fields of an update request into a map of
// columns to write. Pointer fields distinguish absent from explicitly zero:
// nil pointers are skipped while present zero values are applied.
func TransformFields(data interface{}) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			if field.IsNil() {
				continue
			}

			updatedFields[fieldName] = field.Elem().Interface()

			continue
		}

		if field.IsZero() {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = time.Now().UTC()

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
