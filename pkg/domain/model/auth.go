package model

type AuthQueryInput struct {
	Method string            `json:"method"`
	Path   string            `json:"path"`
	Header map[string]string `json:"header"`
}

type AuthQueryOutput struct {
	Allow bool `json:"allow"`
}
