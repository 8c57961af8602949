package main

// Exit codes
const (
	ExitSuccess       = 0 // Success
	ExitError         = 1 // General error (invalid arguments, write failure)
	ExitConfigError   = 2 // Configuration error (invalid config file or environment)
	ExitDataError     = 3 // Data error (unsupported input format, missing columns)
	ExitInputNotFound = 4 // Input file does not exist
)
