package report

import (
	"fmt"
	"io"
	"strconv"

	"paritybalance/internal/balance"

	"github.com/goccy/go-json"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat maps a user-supplied name onto a Format. Empty means text.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (want %q or %q)", raw, FormatText, FormatJSON)
	}
}

// Report is the JSON shape of a computation.
type Report struct {
	N      int          `json:"n"`
	Even   int          `json:"even"`
	Odd    int          `json:"odd"`
	Mode   balance.Mode `json:"mode"`
	Result int64        `json:"result"`
}

func FromResult(res balance.Result) Report {
	return Report{
		N:      res.N,
		Even:   res.Counts.Even,
		Odd:    res.Counts.Odd,
		Mode:   res.Mode,
		Result: res.Value,
	}
}

// Write renders rep as a single line. The text form is just the result.
func Write(w io.Writer, rep Report, format Format) error {
	var line []byte
	switch format {
	case "", FormatText:
		line = strconv.AppendInt(nil, rep.Result, 10)
	case FormatJSON:
		data, err := json.Marshal(rep)
		if err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		line = data
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	line = append(line, '\n')
	if _, err := w.Write(line); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
