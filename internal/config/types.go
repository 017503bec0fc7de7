package config

const CurrentVersion = 1

// Config holds user defaults. Flags and environment variables take
// precedence over everything stored here.
type Config struct {
	Version     int    `json:"version"`
	Shell       string `json:"shell,omitempty"`
	HistoryFile string `json:"historyFile,omitempty"`
	Clipboard   *bool  `json:"clipboard,omitempty"`
	OSC52       *bool  `json:"osc52,omitempty"`
}
