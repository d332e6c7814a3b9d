package models

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	DonationCash     = "cash"
	DonationMaterial = "material"
)

type Donation struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	DonorName    string             `bson:"donor_name" json:"donor_name" validate:"required"`
	EventID      string             `bson:"event_id,omitempty" json:"event_id,omitempty"`
	Amount       *float64           `bson:"amount,omitempty" json:"amount,omitempty" validate:"omitempty,gte=0"`
	Kind         string             `bson:"kind" json:"kind" validate:"oneof=cash material"`
	MaterialDesc string             `bson:"material_desc,omitempty" json:"material_desc,omitempty"`
	Date         string             `bson:"date" json:"date" validate:"required"`
}

func (d *Donation) ApplyDefaults() {
	if d.Kind == "" {
		d.Kind = DonationCash
	}
}
