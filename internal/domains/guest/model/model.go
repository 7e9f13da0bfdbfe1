package model

import (
	"hotelier/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID    = "id"
	FieldName  = "name"
	FieldEmail = "email"
	FieldPhone = "phone"
)

type Guest struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
	model.Metadata
}
