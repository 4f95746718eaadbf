package models

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile contains the personal data of a user. There is exactly one
// profile per user, it is created when it is first read.
type Profile struct {
	DefaultModel
	UserID              uuid.UUID `json:"-" gorm:"uniqueIndex"`
	FullName            string    `json:"fullName"`
	CPF                 string    `json:"cpf"`
	Phone               string    `json:"phone"`
	ProfilePhoto        string    `json:"profilePhoto"`
	AddressStreet       string    `json:"addressStreet"`
	AddressNumber       string    `json:"addressNumber"`
	AddressComplement   string    `json:"addressComplement"`
	AddressNeighborhood string    `json:"addressNeighborhood"`
	AddressCity         string    `json:"addressCity"`
	AddressState        string    `json:"addressState"`
	AddressZip          string    `json:"addressZip"`
}

var (
	nonDigits  = regexp.MustCompile(`\D`)
	stateAbbrv = regexp.MustCompile(`^[A-Z]{2}$`)
)

// BeforeSave normalizes the profile data.
//
// CPF and zip code are stored as digits only, the state is stored in upper case.
func (p *Profile) BeforeSave(_ *gorm.DB) error {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Phone = strings.TrimSpace(p.Phone)
	p.AddressStreet = strings.TrimSpace(p.AddressStreet)
	p.AddressNumber = strings.TrimSpace(p.AddressNumber)
	p.AddressComplement = strings.TrimSpace(p.AddressComplement)
	p.AddressNeighborhood = strings.TrimSpace(p.AddressNeighborhood)
	p.AddressCity = strings.TrimSpace(p.AddressCity)

	p.CPF = nonDigits.ReplaceAllString(p.CPF, "")
	if p.CPF != "" && len(p.CPF) != 11 {
		return ErrCPFInvalid
	}

	p.AddressZip = nonDigits.ReplaceAllString(p.AddressZip, "")
	if p.AddressZip != "" && len(p.AddressZip) != 8 {
		return ErrZipInvalid
	}

	p.AddressState = strings.ToUpper(strings.TrimSpace(p.AddressState))
	if p.AddressState != "" && !stateAbbrv.MatchString(p.AddressState) {
		return ErrStateInvalid
	}

	return nil
}

// ProfileFor returns the profile of the user, creating an empty one
// if none exists yet.
func ProfileFor(db *gorm.DB, userID uuid.UUID) (Profile, error) {
	var profile Profile
	err := db.Where(&Profile{UserID: userID}).First(&profile).Error
	if err == nil {
		return profile, nil
	}

	if !errors.Is(err, ErrResourceNotFound) {
		return Profile{}, err
	}

	profile = Profile{UserID: userID}
	err = db.Create(&profile).Error
	if err != nil {
		return Profile{}, err
	}

	return profile, nil
}
