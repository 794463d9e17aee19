package model

type Clinic struct {
	Base
	Name string `db:"name" json:"name"`
}

type CreateClinicRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateClinicRequest struct {
	Name *string `json:"name"`
}
