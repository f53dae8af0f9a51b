package app

// Config holds runtime wiring options for building the app.
type Config struct {
	ProfilePath string // letter-frequency profile file; empty selects the embedded English profile
}
