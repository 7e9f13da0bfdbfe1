package model

import (
	"hotelier/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID     = "id"
	FieldNumber = "number"
	FieldType   = "type"
	FieldPrice  = "price"
)

type Room struct {
	ID     string  `db:"id"`
	Number string  `db:"number"`
	Type   string  `db:"type"`
	Price  float64 `db:"price"`
	model.Metadata
}
