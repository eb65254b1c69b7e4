package models

// Config holds the server settings read from config.json.
type Config struct {
	ListenAddr     string   `json:"listen_addr"`
	AllowedOrigins []string `json:"allowed_origins"`
	PublicDir      string   `json:"public_dir"`
}
