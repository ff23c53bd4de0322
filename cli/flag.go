package cli

import (
	"time"

	"github.com/spf13/pflag"
)

// timeoutFlag is a duration flag that remembers whether it was set, so an
// explicit --timeout overrides the configured value while its absence leaves
// the configuration alone.
type timeoutFlag struct {
	IsSet bool
	Value time.Duration
}

// String implements pflag.Value.
func (f *timeoutFlag) String() string {
	if !f.IsSet {
		return ""
	}
	return f.Value.String()
}

func (f *timeoutFlag) Set(value string) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return err
	}
	f.Value = d
	f.IsSet = true
	return nil
}

func (f *timeoutFlag) Type() string {
	return "duration"
}

var _ pflag.Value = &timeoutFlag{}
