package v1

import "github.com/tutorialhub/tutorials-service/internal/models"

// NewTutorialFromModel converts a models.Tutorial to an API Tutorial.
func NewTutorialFromModel(t models.Tutorial) Tutorial {
	return Tutorial{
		Id:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Published:   t.Published,
	}
}

// NewTutorialListFromModels converts a slice of records. The result is never
// nil so an empty list encodes as [] rather than null.
func NewTutorialListFromModels(tutorials []models.Tutorial) []Tutorial {
	out := make([]Tutorial, 0, len(tutorials))
	for _, t := range tutorials {
		out = append(out, NewTutorialFromModel(t))
	}
	return out
}

// ToModel converts the request payload into a domain record.
func (r TutorialRequest) ToModel() models.Tutorial {
	return models.Tutorial{
		Title:       r.Title,
		Description: r.Description,
		Published:   r.Published,
	}
}
