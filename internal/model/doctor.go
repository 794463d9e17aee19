package model

import (
	"github.com/google/uuid"
)

// Doctor belongs to exactly one clinic. The weekly availability window is a
// pair of day-of-week codes plus a pair of times of day. The weekday ints
// are stored as-is; no range is enforced on them.
type Doctor struct {
	Base
	ClinicID                uuid.UUID `db:"clinic_id" json:"clinic_id"`
	Name                    string    `db:"name" json:"name"`
	AvatarImageURL          *string   `db:"avatar_image_url" json:"avatar_image_url,omitempty"`
	AvailableFromWeekDay    int       `db:"available_from_week_day" json:"available_from_week_day"`
	AvailableToWeekDay      int       `db:"available_to_week_day" json:"available_to_week_day"`
	AvailableFromTime       string    `db:"available_from_time" json:"available_from_time"`
	AvailableToTime         string    `db:"available_to_time" json:"available_to_time"`
	Specialty               string    `db:"specialty" json:"specialty"`
	AppointmentPriceInCents int       `db:"appointment_price_in_cents" json:"appointment_price_in_cents"`
}

type CreateDoctorRequest struct {
	ClinicID                string  `json:"clinic_id" binding:"required,uuid"`
	Name                    string  `json:"name" binding:"required"`
	AvatarImageURL          *string `json:"avatar_image_url" binding:"omitempty,url"`
	AvailableFromWeekDay    int     `json:"available_from_week_day"`
	AvailableToWeekDay      int     `json:"available_to_week_day"`
	AvailableFromTime       string  `json:"available_from_time" binding:"required,timeofday"`
	AvailableToTime         string  `json:"available_to_time" binding:"required,timeofday"`
	Specialty               string  `json:"specialty" binding:"required"`
	AppointmentPriceInCents int     `json:"appointment_price_in_cents" binding:"required"`
}

type UpdateDoctorRequest struct {
	Name                    *string `json:"name"`
	AvatarImageURL          *string `json:"avatar_image_url" binding:"omitempty,url"`
	AvailableFromWeekDay    *int    `json:"available_from_week_day"`
	AvailableToWeekDay      *int    `json:"available_to_week_day"`
	AvailableFromTime       *string `json:"available_from_time" binding:"omitempty,timeofday"`
	AvailableToTime         *string `json:"available_to_time" binding:"omitempty,timeofday"`
	Specialty               *string `json:"specialty"`
	AppointmentPriceInCents *int    `json:"appointment_price_in_cents"`
}
