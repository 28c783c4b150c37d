package cli

var (
	NewApp       = newApp
	LoadEnvFile  = loadEnvFile
	PrintText    = printText
	RelativeTime = relativeTime
)
