package clipmd

// ActionExtractContent is the request action answered by Handler.
const ActionExtractContent = "extractContent"

// Request is an inbound extraction message.
type Request struct {
	Action string `json:"action"`
}

// Response is the outcome of an extraction. Exactly one of Content or Error
// is meaningful, as selected by Success.
type Response struct {
	Success bool   `json:"success"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ExtractFunc is a zero-argument extraction entry point returning Markdown.
type ExtractFunc func() (string, error)

// Respond invokes fn and converts its outcome into a Response.
// A returned error or a panic raised by fn becomes a failure Response;
// nothing propagates past Respond.
func Respond(fn ExtractFunc) (resp Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = Response{Success: false, Error: panicMessage(r)}
		}
	}()

	content, err := fn()
	if err != nil {
		return Response{Success: false, Error: err.Error()}
	}
	return Response{Success: true, Content: content}
}

func panicMessage(r any) string {
	switch v := r.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return "unknown error"
	}
}

// Handler answers extraction requests.
type Handler struct {
	Extract ExtractFunc
}

// Handle answers req. The second result is false when the action is not one
// the handler serves, in which case no response should be sent.
func (h *Handler) Handle(req Request) (Response, bool) {
	if req.Action != ActionExtractContent {
		return Response{}, false
	}
	return Respond(h.Extract), true
}
