package natmap

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/remeh/sizedwaitgroup"
	"github.com/zan8in/gologger"
	"github.com/zan8in/natmap/pkg/mapper"
	"github.com/zan8in/natmap/pkg/util/dateutil"
	"go.uber.org/multierr"
	"golang.org/x/exp/slices"
)

type Runner struct {
	options *Options

	mu      sync.Mutex
	results []*mapper.Result

	// OnResult, when set, receives every mapping as soon as it is built
	OnResult func(result *mapper.Result)
}

func NewRunner(options *Options) (*Runner, error) {
	runner := &Runner{
		options: options,
	}
	return runner, nil
}

func (runner *Runner) Run() error {
	starttime := time.Now()

	gologger.Print().Msgf(
		"Generating 1:1 NAT mappings. Starting Natmap %s at %s\n",
		Version,
		dateutil.GetNowFullDateTime(),
	)

	var err error
	if runner.options.PairsFile != "" {
		err = runner.runPairsFile()
	} else {
		err = runner.runSingle()
	}
	if err != nil {
		return err
	}

	runner.handleOutput()

	if err := runner.WriteOutput(); err != nil {
		return err
	}

	gologger.Print().Msgf("%d range pairs (%d address mappings) generated in %s. Natmap finished at %s\n",
		len(runner.results),
		runner.entryCount(),
		time.Since(starttime).Round(time.Millisecond),
		dateutil.GetNowFullDateTime(),
	)

	return nil
}

// Results returns the generated mappings in DMZ base address order
func (runner *Runner) Results() []*mapper.Result {
	return runner.results
}

func (runner *Runner) entryCount() int {
	count := 0
	for _, result := range runner.results {
		count += len(result.Entries)
	}
	return count
}

func (runner *Runner) mapOptions() mapper.Options {
	return mapper.Options{HostsOnly: !runner.options.All}
}

func (runner *Runner) runSingle() error {
	result, err := mapper.Map(runner.options.DMZ, runner.options.Internal, runner.mapOptions())
	if err != nil {
		return err
	}
	runner.addResult(result)
	return nil
}

func (runner *Runner) runPairsFile() error {
	f, err := os.Open(runner.options.PairsFile)
	if err != nil {
		return err
	}
	defer f.Close()

	var (
		errmu sync.Mutex
		errs  error
	)
	wg := sizedwaitgroup.New(runner.options.Threads)

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		wg.Add()
		go func(line string) {
			defer wg.Done()
			if err := runner.mapPair(line); err != nil {
				errmu.Lock()
				errs = multierr.Append(errs, err)
				errmu.Unlock()
			}
		}(line)
	}
	wg.Wait()

	if err := s.Err(); err != nil {
		return err
	}

	// a bad pair fails that pair, not the batch
	for _, err := range multierr.Errors(errs) {
		gologger.Warning().Msgf("%s\n", err)
	}

	if len(runner.results) == 0 && errs != nil {
		return errs
	}

	slices.SortFunc(runner.results, func(a, b *mapper.Result) bool {
		return a.DMZ.Base < b.DMZ.Base
	})

	return nil
}

func (runner *Runner) mapPair(line string) error {
	dmz, internal, ok := strings.Cut(line, ",")
	if !ok {
		return errors.Errorf("malformed pair: %s", line)
	}

	result, err := mapper.Map(strings.TrimSpace(dmz), strings.TrimSpace(internal), runner.mapOptions())
	if err != nil {
		return err
	}
	runner.addResult(result)
	return nil
}

func (runner *Runner) addResult(result *mapper.Result) {
	runner.mu.Lock()
	runner.results = append(runner.results, result)
	runner.mu.Unlock()

	if runner.OnResult != nil {
		runner.OnResult(result)
	}
}
