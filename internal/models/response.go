package models

// Button is a quick-reply option shown by the client UI
type Button struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Response is the uniform envelope returned for every user turn
type Response struct {
	Text    string   `json:"text"`
	Photos  []string `json:"photos"`
	Buttons []Button `json:"buttons"`
}

// NewResponse wraps text (and optional buttons) into an envelope.
// Photos and Buttons are always non-nil so the JSON stays a stable shape.
func NewResponse(text string, buttons ...Button) *Response {
	if buttons == nil {
		buttons = []Button{}
	}
	return &Response{
		Text:    text,
		Photos:  []string{},
		Buttons: buttons,
	}
}
