package dto

// ProfileForm is bound from the multipart form; the optional resume file
// is handled separately by the handler. The list fields arrive as
// comma-separated strings, matching the original client.
type ProfileForm struct {
	Age           int    `form:"age" validate:"required,min=1"`
	Gender        string `form:"gender" validate:"required,oneof=Male Female Other"`
	Skills        string `form:"skills"`
	Interests     string `form:"interests"`
	GoalCompanies string `form:"goalCompanies"`
	Bio           string `form:"bio"`
}
