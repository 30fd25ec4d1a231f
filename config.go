package metrics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nicksonwcmak/metrics/codec"
)

// Order is the parameter p of a metric. In JSON it is a number, or the string
// "inf" for Infinity.
type Order float64

// ParseOrder parses a decimal number or one of "inf", "+inf", "infinity", "max".
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "+inf", "infinity", "max":
		return Order(Infinity), nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid order %q: %w", s, err)
	}
	return Order(f), nil
}

func (o Order) String() string {
	if math.IsInf(float64(o), 1) {
		return "inf"
	}
	return strconv.FormatFloat(float64(o), 'g', -1, 64)
}

// MarshalJSON implements json.Marshaler.
func (o Order) MarshalJSON() ([]byte, error) {
	switch f := float64(o); {
	case math.IsNaN(f) || math.IsInf(f, -1):
		return nil, fmt.Errorf("cannot marshal order %v", f)
	case math.IsInf(f, 1):
		return []byte(`"inf"`), nil
	default:
		return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
	}
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Order) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid order %s: %w", s, err)
		}
		s = unquoted
	}
	parsed, err := ParseOrder(s)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Config selects a metric by kind and parameter.
//
// P is required for KindPAdic and defaults to 2 for KindLp. Discrete and
// Hamming metrics take no parameter.
type Config struct {
	Kind Kind  `json:"kind"`
	P    Order `json:"p,omitempty"`
}

// Validate reports whether the configuration describes a metric.
func (c Config) Validate() error {
	_, err := c.normalize()
	return err
}

func (c Config) normalize() (Config, error) {
	p := float64(c.P)
	switch c.Kind {
	case KindDiscrete, KindHamming:
		if p != 0 {
			return c, &ErrInvalidParameter{Kind: c.Kind, Param: "p", Value: p}
		}
	case KindLp:
		if p == 0 {
			c.P = 2
		} else if math.IsNaN(p) || p < 1 {
			return c, &ErrInvalidParameter{Kind: c.Kind, Param: "p", Value: p}
		}
	case KindPAdic:
		if p < 2 || p != math.Trunc(p) || p > math.MaxInt32 {
			return c, &ErrInvalidParameter{Kind: c.Kind, Param: "p", Value: p}
		}
	default:
		return c, &ErrInvalidParameter{Kind: c.Kind, Param: "kind", Value: c.Kind.String()}
	}
	return c, nil
}

// LoadConfig decodes a Config with c and validates it.
// If c is nil, codec.Default is used.
func LoadConfig(data []byte, c codec.Codec) (Config, error) {
	if c == nil {
		c = codec.Default
	}
	var cfg Config
	if err := c.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s config: %w", c.Name(), err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
