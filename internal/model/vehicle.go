package model

import "strings"

type Vehicle struct {
	Make             string `json:"make"`
	Model            string `json:"model"`
	Trim             string `json:"trim"`
	Plate            string `json:"plate"`
	VIN              string `json:"vin"`
	RegistrationDate Date   `json:"registration_date"`
	Odometer         int    `json:"odometer"`
	FuelType         string `json:"fuel_type"`
	Color            string `json:"color"`
	PowerHP          int    `json:"power_hp"`
	DisplacementCC   int    `json:"displacement_cc"`
	Seats            int    `json:"seats"`
	Doors            int    `json:"doors"`
	LastInspection   Date   `json:"last_inspection"`
}

func (v Vehicle) Description() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{v.Make, v.Model, v.Trim} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
