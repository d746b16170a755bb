package constants

const (
	// AppName is used for the cache and config directory names
	AppName = "cutc"

	// SharedScriptFile is the script written to the project root for every IDE
	SharedScriptFile = "userinput.py"

	// RulesFileBase is the rules document name without its IDE-specific extension
	RulesFileBase = "cutc_rules"

	// RulesSubdir is the directory under an IDE marker directory that holds rules
	RulesSubdir = "rules"

	// ConfigFile is the name of the optional user config file
	ConfigFile = "config.toml"

	// LogFile is the name of the rotating log file in the cache directory
	LogFile = "cutc.log"

	// SupportURL is printed when an installation fails
	SupportURL = "https://ko-fi.com/thorrdu"
)
