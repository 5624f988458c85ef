package models

type Profile struct {
	BaseModel
	UserID        string `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName   string `gorm:"not null" json:"company_name"`
	ContactPerson string `gorm:"not null" json:"contact_person"`
	Phone         string `json:"phone"`
	IsAdmin       bool   `gorm:"default:false" json:"is_admin"`
}

// DisplayName is what the public sees next to a listing. Falls back to the
// company name when no contact person is set.
func (p *Profile) DisplayName() string {
	if p.ContactPerson != "" {
		return p.ContactPerson
	}
	return p.CompanyName
}
