package models

// Response type values understood by the chat client.
const (
	ResponseEphemeral = "ephemeral"
	ResponseInChannel = "inChannel"
)

// Message is the card payload returned to the chat client. The same shape is
// used for fresh cards, full replacements and transient error messages; only
// text and visibility flags differ.
type Message struct {
	ID              FlexString   `json:"id,omitempty"`
	Text            string       `json:"text"`
	ResponseType    string       `json:"responseType,omitempty"`
	ReplaceOriginal bool         `json:"replaceOriginal"`
	DeleteOriginal  bool         `json:"deleteOriginal"`
	Attachments     []Attachment `json:"attachments,omitempty"`
}

// Attachment is one section of a card: a selector group, a button row or the
// reservation-status field list.
type Attachment struct {
	Title      string   `json:"title,omitempty"`
	Text       string   `json:"text,omitempty"`
	CallbackID string   `json:"callbackId,omitempty"`
	Actions    []Action `json:"actions,omitempty"`
	Fields     []Field  `json:"fields,omitempty"`
}

// Action is an interactive control inside an attachment.
type Action struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"` // "select" or "button"
	Text    string   `json:"text"`
	Value   string   `json:"value,omitempty"`
	Style   string   `json:"style,omitempty"`
	Options []Option `json:"options,omitempty"`
}

// Option is a selectable entry of a select action.
type Option struct {
	Text  string `json:"text"`
	Value string `json:"value"`
}

// Field is a titled row inside an attachment, used by the status section.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// NewMessage builds an ephemeral text-only message.
func NewMessage(text string) Message {
	return Message{Text: text, ResponseType: ResponseEphemeral}
}
