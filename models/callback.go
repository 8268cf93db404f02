package models

import (
	"bytes"
	"encoding/json"
)

// FlexString decodes a JSON string or number into a plain string. The chat
// client is loosely typed about identifiers such as channelLogId.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// CommandRequest is the body of a slash-command webhook call.
type CommandRequest struct {
	Text      string     `json:"text"`
	Tenant    Tenant     `json:"tenant"`
	User      User       `json:"user"`
	ChannelID FlexString `json:"channelId"`
}

// ActionRequest is the body of an interaction callback. The client echoes the
// full previously rendered card back as OriginalMessage on every callback.
type ActionRequest struct {
	ActionName   string          `json:"actionName"`
	ActionValue  string          `json:"actionValue"`
	Actions      []CallbackEntry `json:"actions"`
	Original     *Message        `json:"originalMessage"`
	Tenant       Tenant          `json:"tenant"`
	User         User            `json:"user"`
	ChannelLogID FlexString      `json:"channelLogId"`
	MessageID    FlexString      `json:"id"`
}

// CallbackEntry is the legacy actions[0] form of an interaction callback.
type CallbackEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Tenant identifies the chat tenant the callback originated from.
type Tenant struct {
	ID FlexString `json:"id"`
}

// User identifies the interacting chat user.
type User struct {
	ID FlexString `json:"id"`
}
