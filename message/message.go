// Package message defines the value types exchanged with elastic agent plugins.
//
// The types are independent of any protocol version. A codec turns them into
// the JSON bodies of one version and back. Values are not mutated after
// construction, so they can be shared between goroutines freely.
package message

// AgentMetadata describes one elastic agent as known to the server.
//
//   - On create/should-assign-work requests the server sends it to the plugin.
//   - On disable/delete callbacks the plugin sends a list of them back.
type AgentMetadata struct {
	ID          string // Agent UUID as registered with the server
	AgentState  string // e.g. "Idle", "Building", "LostContact"
	BuildState  string // e.g. "Idle", "Building", "Cancelled"
	ConfigState string // e.g. "Pending", "Enabled", "Disabled"
}

// NewAgentMetadata returns the metadata of a single agent.
func NewAgentMetadata(id, agentState, buildState, configState string) AgentMetadata {
	return AgentMetadata{
		ID:          id,
		AgentState:  agentState,
		BuildState:  buildState,
		ConfigState: configState,
	}
}

// Image is an icon served by a plugin. Both fields are mandatory: an image
// missing either one is represented by a nil *Image.
type Image struct {
	ContentType string
	Data        string // base64 encoded payload
}

// DataURI renders the image as an RFC 2397 data URI suitable for an <img> tag.
func (i *Image) DataURI() string {
	return "data:" + i.ContentType + ";base64," + i.Data
}
