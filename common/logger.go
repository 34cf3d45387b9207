package common

import (
	"metrack/status"
)

// MT: Constant after initialization; thread-safe
var Log status.Logger = status.Default()
