package api

import (
	"github.com/zan8in/gologger"
	"github.com/zan8in/gologger/levels"
	"github.com/zan8in/natmap/pkg/mapper"
)

type Result struct {
	DMZ      string
	Internal string
}

type OnResultCallback func(r Result)

var OnResult OnResultCallback

// Generate computes the 1:1 mapping between two equal-size CIDR ranges and
// returns the address pairs in order. hostsOnly leaves network and
// broadcast addresses out for prefixes /30 and shorter.
func Generate(dmzCidr, internalCidr string, hostsOnly bool) ([]Result, error) {
	gologger.DefaultLogger.SetMaxLevel(levels.LevelFatal)

	result, err := mapper.Map(dmzCidr, internalCidr, mapper.Options{HostsOnly: hostsOnly})
	if err != nil {
		return nil, err
	}

	rst := make([]Result, 0, len(result.Entries))
	for _, e := range result.Entries {
		r := Result{DMZ: e.DMZ, Internal: e.Internal}
		if OnResult != nil {
			OnResult(r)
		}
		rst = append(rst, r)
	}

	return rst, nil
}
