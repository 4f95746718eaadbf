package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/moneta-finance/backend/internal/models"
)

type ProfileEditable struct {
	FullName            string `json:"fullName" example:"Maria da Silva" default:""`                 // Full name of the user
	CPF                 string `json:"cpf" example:"12345678909" default:""`                         // CPF number, 11 digits. Formatting characters are removed
	Phone               string `json:"phone" example:"+55 11 91234-5678" default:""`                 // Phone number
	ProfilePhoto        string `json:"profilePhoto" example:"https://example.com/me.jpg" default:""` // URL of the profile photo
	AddressStreet       string `json:"addressStreet" example:"Avenida Paulista" default:""`          // Street
	AddressNumber       string `json:"addressNumber" example:"1578" default:""`                      // House number
	AddressComplement   string `json:"addressComplement" example:"Apto 12" default:""`               // Complement
	AddressNeighborhood string `json:"addressNeighborhood" example:"Bela Vista" default:""`          // Neighborhood
	AddressCity         string `json:"addressCity" example:"São Paulo" default:""`                   // City
	AddressState        string `json:"addressState" example:"SP" default:""`                         // State, two letter abbreviation
	AddressZip          string `json:"addressZip" example:"01310200" default:""`                     // Zip code, 8 digits. Formatting characters are removed
}

func (editable ProfileEditable) model() models.Profile {
	return models.Profile{
		FullName:            editable.FullName,
		CPF:                 editable.CPF,
		Phone:               editable.Phone,
		ProfilePhoto:        editable.ProfilePhoto,
		AddressStreet:       editable.AddressStreet,
		AddressNumber:       editable.AddressNumber,
		AddressComplement:   editable.AddressComplement,
		AddressNeighborhood: editable.AddressNeighborhood,
		AddressCity:         editable.AddressCity,
		AddressState:        editable.AddressState,
		AddressZip:          editable.AddressZip,
	}
}

func newProfileEditable(model models.Profile) ProfileEditable {
	return ProfileEditable{
		FullName:            model.FullName,
		CPF:                 model.CPF,
		Phone:               model.Phone,
		ProfilePhoto:        model.ProfilePhoto,
		AddressStreet:       model.AddressStreet,
		AddressNumber:       model.AddressNumber,
		AddressComplement:   model.AddressComplement,
		AddressNeighborhood: model.AddressNeighborhood,
		AddressCity:         model.AddressCity,
		AddressState:        model.AddressState,
		AddressZip:          model.AddressZip,
	}
}

type ProfileLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/profile"` // The profile itself
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	Links ProfileLinks `json:"links"`
}

func newProfile(c *gin.Context, model models.Profile) Profile {
	return Profile{
		DefaultModel:    model.DefaultModel,
		ProfileEditable: newProfileEditable(model),
		Links: ProfileLinks{
			Self: fmt.Sprintf("%s/v1/profile", c.GetString(string(models.DBContextURL))),
		},
	}
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`                                              // Data for the profile
	Error *string  `json:"error" example:"the CPF must consist of 11 digits"` // The error, if any occurred
}
