package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Manage employees and departments with text commands"
	MsgShellShort   = "Start the interactive command shell"
	MsgExecShort    = "Run text commands given as arguments"
	MsgUsageShort   = "Print the valid command formats"
	MsgConfigShort  = "Print a config file with every default commented out"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	// Version output
	MsgVersionFormat = "roster version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrLoadConfig  = "failed to load configuration"
	MsgErrFormat      = "invalid output format"
	MsgErrExecFailed  = "%d of %d commands failed"
	MsgErrShellFailed = "shell stopped unexpectedly"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file to use instead of the one in the user config directory"
	MsgFlagFormat    = "Output format: auto, term, text, json, yaml, toml or xml"
	MsgFlagKeepGoing = "Run every command even after one fails"
	MsgFlagPath      = "Print the user config file path instead of its content"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/exec-long.txt
	msgExecLongRaw string
	MsgExecLong    = strings.TrimSpace(msgExecLongRaw)

	//go:embed msgs/exec-example.txt
	msgExecExampleRaw string
	MsgExecExample    = strings.TrimRight(msgExecExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)
)
