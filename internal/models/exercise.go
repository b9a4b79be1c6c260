package models

// Exercise is a reference entry from the remote ExerciseDB catalog. Field
// tags match the upstream JSON; everything but the name is optional.
type Exercise struct {
	Name      string  `json:"name"`
	BodyPart  *string `json:"bodyPart,omitempty"`
	Target    *string `json:"target,omitempty"`
	Equipment *string `json:"equipment,omitempty"`
	GifURL    *string `json:"gifUrl,omitempty"`
}
