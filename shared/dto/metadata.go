package dto

import (
	"hotelier/shared/constant"
	"hotelier/shared/model"
)

type Metadata struct {
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = model.CreatedAt.UTC().Format(constant.DateFormat)
	m.ModifiedAt = model.ModifiedAt.UTC().Format(constant.DateFormat)
}
