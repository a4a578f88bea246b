package domain

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Section is one named block of a structured analysis. Body is markdown.
type Section struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// AnalysisResult maps section names to bodies. Iteration follows the order in
// which the remote service returned the sections. A result is never modified
// once built; a newer analysis replaces it wholesale.
type AnalysisResult struct {
	sections *orderedmap.OrderedMap[string, string]
}

// NewAnalysisResult builds a result from sections in display order. A repeated
// name keeps its first position and takes the last body.
func NewAnalysisResult(sections ...Section) AnalysisResult {
	om := orderedmap.New[string, string](len(sections))
	for _, section := range sections {
		om.Set(section.Name, section.Body)
	}

	return AnalysisResult{sections: om}
}

func (r AnalysisResult) Len() int {
	if r.sections == nil {
		return 0
	}

	return r.sections.Len()
}

func (r AnalysisResult) Get(name string) (string, bool) {
	if r.sections == nil {
		return "", false
	}

	return r.sections.Get(name)
}

// Names returns section names in display order.
func (r AnalysisResult) Names() []string {
	names := make([]string, 0, r.Len())
	for _, section := range r.Sections() {
		names = append(names, section.Name)
	}

	return names
}

func (r AnalysisResult) Sections() []Section {
	if r.sections == nil {
		return nil
	}

	sections := make([]Section, 0, r.sections.Len())
	for pair := r.sections.Oldest(); pair != nil; pair = pair.Next() {
		sections = append(sections, Section{Name: pair.Key, Body: pair.Value})
	}

	return sections
}

func (r AnalysisResult) MarshalJSON() ([]byte, error) {
	if r.sections == nil {
		return []byte("{}"), nil
	}

	return r.sections.MarshalJSON()
}

func (r *AnalysisResult) UnmarshalJSON(data []byte) error {
	om := orderedmap.New[string, string]()
	if err := om.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decode analysis sections: %w", err)
	}

	r.sections = om
	return nil
}
