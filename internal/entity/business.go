package entity

import (
	"time"

	"github.com/google/uuid"
)

// BusinessType is the closed category enum for businesses.
type BusinessType string

const (
	BusinessTypeKirana        BusinessType = "KIRANA"
	BusinessTypeRestaurant    BusinessType = "RESTAURANT"
	BusinessTypeClinic        BusinessType = "CLINIC"
	BusinessTypeSalon         BusinessType = "SALON"
	BusinessTypeCoaching      BusinessType = "COACHING"
	BusinessTypeRealEstate    BusinessType = "REAL_ESTATE"
	BusinessTypeTravelAgency  BusinessType = "TRAVEL_AGENCY"
	BusinessTypeLegal         BusinessType = "LEGAL"
	BusinessTypeTaxConsultant BusinessType = "TAX_CONSULTANT"
	BusinessTypeMedicalStore  BusinessType = "MEDICAL_STORE"
	BusinessTypeElectronics   BusinessType = "ELECTRONICS"
	BusinessTypeClothing      BusinessType = "CLOTHING"
	BusinessTypeJewellery     BusinessType = "JEWELLERY"
	BusinessTypeGym           BusinessType = "GYM"
	BusinessTypeOther         BusinessType = "OTHER"
)

// AllBusinessTypes lists every category the platform recognises.
var AllBusinessTypes = []BusinessType{
	BusinessTypeKirana,
	BusinessTypeRestaurant,
	BusinessTypeClinic,
	BusinessTypeSalon,
	BusinessTypeCoaching,
	BusinessTypeRealEstate,
	BusinessTypeTravelAgency,
	BusinessTypeLegal,
	BusinessTypeTaxConsultant,
	BusinessTypeMedicalStore,
	BusinessTypeElectronics,
	BusinessTypeClothing,
	BusinessTypeJewellery,
	BusinessTypeGym,
	BusinessTypeOther,
}

// BusinessStatus tracks a business through the sales funnel.
type BusinessStatus string

const (
	BusinessStatusLead      BusinessStatus = "LEAD"
	BusinessStatusContacted BusinessStatus = "CONTACTED"
	BusinessStatusConverted BusinessStatus = "CONVERTED"
	BusinessStatusLost      BusinessStatus = "LOST"
)

// Business represents a local business discovered by acquisition or imported
// manually. Phone is the natural key: at most one business per phone number.
type Business struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Phone     string         `json:"phone"`
	Whatsapp  *string        `json:"whatsapp,omitempty"`
	Address   *string        `json:"address,omitempty"`
	City      string         `json:"city"`
	State     string         `json:"state"`
	Type      BusinessType   `json:"type"`
	Status    BusinessStatus `json:"status"`
	Source    string         `json:"source"`
	Score     int            `json:"score"`
	OwnerID   uuid.UUID      `json:"owner_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
