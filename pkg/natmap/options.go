package natmap

import (
	"github.com/pkg/errors"
	"github.com/zan8in/goflags"
	"github.com/zan8in/gologger"
	"github.com/zan8in/gologger/levels"
	"github.com/zan8in/natmap/pkg/util/fileutil"
)

type Options struct {
	DMZ       string // DMZ is the externally facing range to map from
	Internal  string // Internal is the range the DMZ addresses translate to
	PairsFile string // PairsFile is the file containing dmz,internal range pairs

	All     bool   // All maps network and broadcast addresses too
	Threads int    // Internal worker threads for pairs-file mode
	Output  string // Output is the file to write the mapping to
	Silent  bool   // Silent shows only mapping rows
	Debug   bool   // Prints out debug information

	ConfigFile string // ConfigFile is a yaml file with default option values
}

func ParseOptions() *Options {

	ShowBanner()

	options := &Options{}

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Natmap generates 1:1 NAT mappings between two equal-size IPv4 ranges`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&options.DMZ, "d", "dmz", "", "DMZ range in CIDR notation (e.g. "+ExampleDMZRange+")"),
		flagSet.StringVarP(&options.Internal, "i", "internal", "", "internal range in CIDR notation (e.g. "+ExampleInternalRange+")"),
		flagSet.StringVarP(&options.PairsFile, "pf", "pairs-file", "", "list of dmz,internal range pairs to map (file)"),
	)

	flagSet.CreateGroup("mapping", "Mapping",
		flagSet.BoolVar(&options.All, "all", false, "map network and broadcast addresses too"),
	)

	flagSet.CreateGroup("rate-limit", "Rate-limit",
		flagSet.IntVar(&options.Threads, "c", DefaultThreads, "general internal worker threads"),
	)

	flagSet.CreateGroup("config", "Configuration",
		flagSet.StringVarP(&options.ConfigFile, "config", "cf", "", "natmap config file (yaml)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&options.Output, "output", "o", "", "file to write output to (optional), support format: txt,csv,json"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only mapping rows in output"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVar(&options.Debug, "debug", false, "display debugging information"),
	)

	_ = flagSet.Parse()

	if err := options.loadConfigFile(); err != nil {
		gologger.Fatal().Msgf("Program exiting: %s\n", err)
	}

	if err := options.validateOptions(); err != nil {
		gologger.Fatal().Msgf("Program exiting: %s\n", err)
	}

	return options
}

// NewOptions is the library entry, filling defaults the flag parser would
// have applied.
func NewOptions(options Options) *Options {
	if options.Threads <= 0 {
		options.Threads = DefaultThreads
	}
	return &options
}

var (
	errNoInput        = errors.New("no input ranges provided")
	errHalfPair       = errors.New("both dmz and internal ranges are required")
	errOutputFileType = errors.New("output file type error, support txt, json, csv")
	errZeroValue      = errors.New("cannot be zero")
)

func (options *Options) validateOptions() (err error) {

	if options.DMZ == "" && options.Internal == "" && options.PairsFile == "" {
		return errNoInput
	}

	if options.PairsFile == "" && (options.DMZ == "" || options.Internal == "") {
		return errHalfPair
	}

	if options.Threads <= 0 {
		return errors.Wrap(errZeroValue, "threads")
	}

	if options.Debug {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelDebug)
	}

	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}

	if len(options.Output) > 0 {
		if err := checkOutput(options.Output); err != nil {
			return err
		}
	}

	return err
}

func checkOutput(output string) error {
	switch fileutil.FileExt(output) {
	case fileutil.FILE_TXT:
		return nil
	case fileutil.FILE_JSON:
		return nil
	case fileutil.FILE_CSV:
		return nil
	default:
		return errOutputFileType
	}
}
