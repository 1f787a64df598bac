package dto

// ClientMessage is one inbound frame on the dialogue websocket: either a
// recorded audio turn or an out-of-band control command.
type ClientMessage struct {
	Type     string `json:"type" validate:"required,oneof=audio command"`
	AudioB64 string `json:"audio_b64,omitempty" validate:"required_if=Type audio,omitempty,base64"`
	Value    string `json:"value,omitempty"`
}

// ServerReply is every outbound frame. AudioB64 carries base64 WAV whenever
// synthesis produced audio for the turn; Done marks the terminal farewell.
type ServerReply struct {
	ReplyText  string `json:"reply_text"`
	Transcript string `json:"transcript"`
	Done       bool   `json:"done"`
	AudioB64   string `json:"audio_b64,omitempty"`
}

const (
	MessageTypeAudio   = "audio"
	MessageTypeCommand = "command"

	CommandReindex = "reindex"
)
