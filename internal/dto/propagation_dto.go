package dto

// SectionHighlightResponse is one highlight registered against a section.
type SectionHighlightResponse struct {
	Text       string `json:"text"`
	Generation int    `json:"generation"`
	Color      string `json:"color"`
}

// PropagationStateResponse is the full snapshot a client uses to paint
// update badges and highlights after reconnecting.
type PropagationStateResponse struct {
	ModulesWithUpdates []int                                 `json:"modules_with_updates"`
	Generation         int                                   `json:"generation"`
	Highlights         map[int]map[string][]SectionHighlightResponse `json:"highlights"`
}

// RenderRequest asks the server to partition a section's current text into
// colored fragments.
type RenderRequest struct {
	Stage   int    `json:"stage" validate:"required,min=1,max=3"`
	Section string `json:"section" validate:"required"`
	Text    string `json:"text"`
}

type FragmentResponse struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

type RenderResponse struct {
	Fragments []FragmentResponse `json:"fragments"`
}
