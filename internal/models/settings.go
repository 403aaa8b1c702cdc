package models

import "time"

// AdminSettings is a single document keyed by "settings". The admin email
// list is the distribution list every order confirmation is copied to.
type AdminSettings struct {
	Key             string    `json:"-" bson:"_id"`
	AdminEmails     []string  `json:"adminEmails" bson:"admin_emails"`
	MakingChargePct float64   `json:"makingChargePct" bson:"making_charge_pct"`
	StoreUPIID      string    `json:"storeUpiId" bson:"store_upi_id"`
	StoreName       string    `json:"storeName" bson:"store_name"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updated_at"`
}
