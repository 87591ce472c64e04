package constant

// Logging
const (
	LogDir      = "logs"
	LogFileName = "termatrix.log"
	MaxLogSize  = 10 * 1024 * 1024 // Rotate when the active log exceeds 10MB
)

// Backend names accepted by the -backend flag
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)
