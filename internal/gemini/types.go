package gemini

// Wire types for the embedContent endpoint. Role is serialized even when
// empty; the endpoint expects the field to be present on embedding content.
type embedContentRequest struct {
	Content              content `json:"content"`
	TaskType             string  `json:"taskType,omitempty"`
	Title                string  `json:"title,omitempty"`
	OutputDimensionality *int    `json:"outputDimensionality,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type embedContentResponse struct {
	Embedding *contentEmbedding `json:"embedding"`
}

type contentEmbedding struct {
	Values []float32 `json:"values"`
}

// Google API error envelope.
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
