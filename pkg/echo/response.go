package echo

// Response describes a request that carries no body of interest.
type Response struct {
	Headers  map[string]string `json:"headers"`
	Method   string            `json:"method"`
	Query    string            `json:"query"`
	ClientIP string            `json:"client_ip"`
}

// ResponseWithBody is Response plus the request body decoded as text.
type ResponseWithBody struct {
	Response
	Data string `json:"data"`
}
