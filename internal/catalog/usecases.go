package catalog

import (
	"errors"
	"fmt"
)

// ErrUnknownUseCase is returned when no use case matches an id.
var ErrUnknownUseCase = errors.New("unknown use case")

// UseCase is an AI application area the analysis is run for.
type UseCase struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

var useCases = []UseCase{
	{ID: "customer-support", Name: "Customer Support", Description: "AI-powered chatbots and virtual assistants to handle customer inquiries"},
	{ID: "marketing", Name: "Marketing & Sales", Description: "Automated content creation and personalized customer interactions"},
	{ID: "data-analysis", Name: "Data Analysis", Description: "Automated insights generation and pattern recognition in large datasets"},
	{ID: "hr", Name: "HR & Recruitment", Description: "Streamlined recruitment process and employee onboarding"},
	{ID: "scheduling", Name: "Meeting Scheduling", Description: "Automated meeting scheduling and calendar management"},
}

// UseCases returns every use case in display order.
func UseCases() []UseCase {
	return append([]UseCase(nil), useCases...)
}

// LookupUseCase finds a use case by id.
func LookupUseCase(id string) (UseCase, error) {
	for _, u := range useCases {
		if u.ID == id {
			return u, nil
		}
	}
	return UseCase{}, fmt.Errorf("%w: %q", ErrUnknownUseCase, id)
}
