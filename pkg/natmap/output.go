package natmap

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/zan8in/gologger"
	"github.com/zan8in/natmap/pkg/mapper"
	"github.com/zan8in/natmap/pkg/util/fileutil"
)

func (runner *Runner) handleOutput() {
	for _, result := range runner.results {
		if result.Overlap {
			gologger.Warning().Msgf("DMZ range %s overlaps internal range %s\n",
				result.DMZ.CIDR, result.Internal.CIDR)
		}

		gologger.Info().Msgf("Mapped %d addresses %s -> %s\n",
			len(result.Entries), result.DMZ.CIDR, result.Internal.CIDR)
		gologger.Debug().Msgf("DMZ: netmask %s broadcast %s | Internal: netmask %s broadcast %s | hosts only: %v\n",
			result.DMZ.Netmask, result.DMZ.Broadcast,
			result.Internal.Netmask, result.Internal.Broadcast,
			result.HostsOnly)

		for _, e := range result.Entries {
			gologger.Silent().Msgf("%s -> %s\n", e.DMZ, e.Internal)
		}
	}
}

// WriteOutput writes all generated mappings to the output file, picking the
// format from the file extension.
func (runner *Runner) WriteOutput() error {
	if runner.options.Output == "" {
		return nil
	}

	f, err := os.Create(runner.options.Output)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer f.Close()

	switch fileutil.FileExt(runner.options.Output) {
	case fileutil.FILE_CSV:
		return runner.writeCSV(f)
	case fileutil.FILE_JSON:
		if len(runner.results) == 1 {
			return runner.results[0].WriteJSON(f)
		}
		return mapper.WriteAllJSON(f, runner.results)
	default:
		for i, result := range runner.results {
			if i > 0 {
				fmt.Fprintln(f)
			}
			if err := result.WriteTable(f); err != nil {
				return err
			}
		}
		return nil
	}
}

func (runner *Runner) writeCSV(f *os.File) error {
	if len(runner.results) == 1 {
		return runner.results[0].WriteCSV(f)
	}

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "%s\n", mapper.CSVHeader)
	for _, result := range runner.results {
		for _, e := range result.Entries {
			fmt.Fprintf(bw, "%s,%s\n", e.DMZ, e.Internal)
		}
	}
	return bw.Flush()
}
