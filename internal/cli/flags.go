package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// viperKeyAnnotation links a flag to its configuration key.
const viperKeyAnnotation = "radarlab/viper-key"

// siValue is a float flag that also accepts SI-prefixed input such as
// "5.6GHz", "150km" or "10ms". The unit suffix is optional.
type siValue struct {
	v    *float64
	unit string
}

func newSIValue(def float64, p *float64, unit string) *siValue {
	*p = def
	return &siValue{v: p, unit: unit}
}

func (s *siValue) Set(in string) error {
	num := strings.TrimSpace(in)
	if s.unit != "" {
		num = strings.TrimSpace(strings.TrimSuffix(num, s.unit))
	}

	if f, err := strconv.ParseFloat(num, 64); err == nil {
		*s.v = f
		return nil
	}

	f, unit, err := humanize.ParseSI(num)
	if err != nil || unit != "" {
		return fmt.Errorf("invalid value %q for unit %q", in, s.unit)
	}

	*s.v = f
	return nil
}

func (s *siValue) String() string {
	if s.v == nil {
		return "0"
	}
	return strconv.FormatFloat(*s.v, 'g', -1, 64)
}

func (s *siValue) Type() string {
	if s.unit == "" {
		return "float"
	}
	return s.unit
}

// siFlag registers an SI float flag bound to a viper key.
func siFlag(cmd *cobra.Command, p *float64, name, key, unit string, def float64, usage string) {
	cmd.Flags().Var(newSIValue(def, p, unit), name, usage)
	annotate(cmd.Flags(), name, key)
}

// annotate records the viper key a flag feeds.
func annotate(fs *pflag.FlagSet, name, key string) {
	_ = fs.SetAnnotation(name, viperKeyAnnotation, []string{key})
}

// bindFlags binds every annotated flag of cmd to v. Unchanged flags leave
// the file, environment and default values in place.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		keys := f.Annotations[viperKeyAnnotation]
		if len(keys) == 0 {
			return
		}
		if err := v.BindPFlag(keys[0], f); err != nil {
			lastErr = err
		}
	})

	return lastErr
}
