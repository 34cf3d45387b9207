package command

import (
	"flag"

	"metrack/common"
	"metrack/status"
)

///////////////////////////////////////////////////////////////////////////////////////////////////
//
// Handle -v.

type VerboseArgs struct {
	Verbose bool
}

func (va *VerboseArgs) Add(fs *flag.FlagSet) {
	fs.BoolVar(&va.Verbose, "v", false, "Print verbose diagnostics to stderr")
	fs.BoolVar(&va.Verbose, "verbose", false, "Print verbose diagnostics to stderr")
}

func (va *VerboseArgs) Validate() error {
	if va.Verbose {
		common.Log.LowerLevelTo(status.LogLevelInfo)
	}
	return nil
}

///////////////////////////////////////////////////////////////////////////////////////////////////
//
// Store layout arguments, shared by every verb.  Each value falls back to the ini defaults file
// and then to the built-in default; the resolved values are carried in a common.Config that gets
// threaded into the command's work.

type ConfigArgs struct {
	ConfigFile   string
	DataDir      string
	Extension    string
	ErrorsFile   string
	ProfileFile  string
	StringSeries string

	config *common.Config
}

func (ca *ConfigArgs) Add(fs *flag.FlagSet) {
	fs.StringVar(&ca.ConfigFile, "config", "",
		"Defaults `filename`, default ~/.metrack")
	fs.StringVar(&ca.DataDir, "data-dir", "",
		"Root `directory` of the series tree")
	fs.StringVar(&ca.Extension, "extension", "",
		"Series file `suffix`, default "+common.DefaultExtension)
	fs.StringVar(&ca.ErrorsFile, "errors-file", "",
		"Base `name` of the reserved string-valued errors log, default "+common.DefaultErrorsFile)
	fs.StringVar(&ca.ProfileFile, "profile-file", "",
		"Base `name` of the per-account profile descriptor, default "+common.DefaultProfileFile)
	fs.StringVar(&ca.StringSeries, "string-series", "",
		"Comma-separated glob `patterns` over metric names that select string-valued series")
}

func (ca *ConfigArgs) Validate() error {
	defaults, err := common.ReadDefaults(ca.ConfigFile)
	if err != nil {
		return err
	}
	defaults.Apply(&ca.DataDir, common.StoreDataDir)
	defaults.Apply(&ca.Extension, common.StoreExtension)
	defaults.Apply(&ca.ErrorsFile, common.StoreErrorsFile)
	defaults.Apply(&ca.ProfileFile, common.StoreProfileFile)
	defaults.Apply(&ca.StringSeries, common.StoreStringSeries)
	ca.config, err = common.NewConfig(
		ca.DataDir, ca.Extension, ca.ErrorsFile, ca.ProfileFile, ca.StringSeries)
	return err
}

func (ca *ConfigArgs) Config() *common.Config {
	return ca.config
}
