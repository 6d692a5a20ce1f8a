package mapper

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// CSVHeader is the first line of every CSV export
const CSVHeader = "DMZ IP,Internal IP"

// header written by older exports, still accepted on read
const legacyCSVHeader = "DMZ_IP,Internal_IP"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteCSV writes the header row followed by one comma-separated line per
// entry, newline-terminated.
func (r *Result) WriteCSV(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", CSVHeader)
	for _, e := range r.Entries {
		fmt.Fprintf(bw, "%s,%s\n", e.DMZ, e.Internal)
	}
	return bw.Flush()
}

func (r *Result) CSVString() string {
	var sb strings.Builder
	r.WriteCSV(&sb)
	return sb.String()
}

// ReadCSV parses a CSV export back into mapping entries
func ReadCSV(rd io.Reader) ([]Entry, error) {
	s := bufio.NewScanner(rd)
	if !s.Scan() {
		return nil, errors.New("empty csv input")
	}
	if header := strings.TrimSpace(s.Text()); header != CSVHeader && header != legacyCSVHeader {
		return nil, errors.Errorf("unexpected csv header: %s", header)
	}

	var entries []Entry
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		dmz, internal, ok := strings.Cut(line, ",")
		if !ok {
			return nil, errors.Errorf("malformed csv line: %s", line)
		}
		entries = append(entries, Entry{DMZ: dmz, Internal: internal})
	}
	return entries, s.Err()
}

func (r *Result) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteAllJSON writes several results as one JSON array
func WriteAllJSON(w io.Writer, results []*Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// WriteTable writes the per-range metadata followed by an aligned
// two-column table of the mapping, for on-screen display.
func (r *Result) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "DMZ range:      %s (netmask %s, broadcast %s, %d addresses, %d usable)\n",
		r.DMZ.CIDR, r.DMZ.Netmask, r.DMZ.Broadcast, r.DMZ.Addresses, r.DMZ.UsableHosts)
	fmt.Fprintf(bw, "Internal range: %s (netmask %s, broadcast %s, %d addresses, %d usable)\n",
		r.Internal.CIDR, r.Internal.Netmask, r.Internal.Broadcast, r.Internal.Addresses, r.Internal.UsableHosts)
	if r.HostsOnly {
		fmt.Fprintf(bw, "Policy:         network and broadcast addresses excluded\n")
	} else {
		fmt.Fprintf(bw, "Policy:         all addresses mapped\n")
	}
	fmt.Fprintf(bw, "\n%-18s %s\n", "DMZ IP", "Internal IP")
	for _, e := range r.Entries {
		fmt.Fprintf(bw, "%-18s %s\n", e.DMZ, e.Internal)
	}
	return bw.Flush()
}
