package models

// ToolDefinition describes an MCP tool and the REST endpoint that backs it.
type ToolDefinition struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Params      []ParamDefinition `json:"params,omitempty"`
}

// ParamDefinition describes one tool parameter and where it travels.
type ParamDefinition struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
	In          string `json:"in"` // "query" or "body"
}
