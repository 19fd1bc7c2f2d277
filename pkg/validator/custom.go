package validator

import "github.com/go-playground/validator/v10"

var complaintCategories = map[string]struct{}{
	"infrastructure": {},
	"sanitation":     {},
	"safety":         {},
	"environment":    {},
	"health":         {},
	"education":      {},
	"transport":      {},
	"other":          {},
}

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("category", validateCategory)
	validate.RegisterValidation("responder_role", validateRole)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

func validateCategory(fl validator.FieldLevel) bool {
	_, ok := complaintCategories[fl.Field().String()]
	return ok
}

func validateRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	return role == "ngo" || role == "authority"
}
