package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nicksonwcmak/metrics"
	"github.com/nicksonwcmak/metrics/codec"
)

type envConfig struct {
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	Codec     string `envconfig:"CODEC" default:"go-json"`
}

type runner struct {
	logger *metrics.Logger
	codec  codec.Codec
}

func newApp(env envConfig, stdout, stderr io.Writer) (*cli.App, error) {
	logger, err := newLogger(env, stderr)
	if err != nil {
		return nil, err
	}
	c, ok := codec.ByName(env.Codec)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q (want one of %s)", env.Codec, strings.Join(codec.Names(), ", "))
	}
	r := &runner{logger: logger, codec: c}

	pFlag := func(value string) *cli.StringFlag {
		return &cli.StringFlag{Name: "p", Value: value, Usage: "metric parameter"}
	}

	return &cli.App{
		Name:      "metricdist",
		Usage:     "Compute the distance between two operands",
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			{
				Name:      "discrete",
				Usage:     "0 if the operands are equal, 1 otherwise",
				ArgsUsage: "A B",
				Action:    r.discrete,
			},
			{
				Name:      "hamming",
				Usage:     "Number of differing runes between equal-length strings",
				ArgsUsage: "A B",
				Action:    r.hamming,
			},
			{
				Name:      "lp",
				Usage:     "Lp distance between comma-separated vectors (--p inf for the max norm)",
				ArgsUsage: "A B",
				Flags:     []cli.Flag{pFlag("2")},
				Action:    r.lp,
			},
			{
				Name:      "padic",
				Usage:     "p-adic distance between integers of any size",
				ArgsUsage: "A B",
				Flags:     []cli.Flag{pFlag("2")},
				Action:    r.padic,
			},
			{
				Name:      "config",
				Usage:     "Distance using a metric configuration file",
				ArgsUsage: "A B",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "configuration file"},
					&cli.StringFlag{Name: "domain", Aliases: []string{"d"}, Value: metrics.DomainVector, Usage: "vector, string, integer or big-integer"},
				},
				Action: r.config,
			},
		},
	}, nil
}

func newLogger(env envConfig, w io.Writer) (*metrics.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(env.LogLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", env.LogLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(env.LogFormat) {
	case "json":
		return metrics.NewLogger(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return metrics.NewLogger(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", env.LogFormat)
	}
}

func operands(c *cli.Context) (string, string, error) {
	if c.Args().Len() != 2 {
		return "", "", fmt.Errorf("%s: expected 2 operands, got %d", c.Command.Name, c.Args().Len())
	}
	return c.Args().Get(0), c.Args().Get(1), nil
}

func (r *runner) discrete(c *cli.Context) error {
	a, b, err := operands(c)
	if err != nil {
		return err
	}
	return eval(c, metrics.Instrument[string](metrics.Discrete[string]{}, metrics.WithLogger(r.logger)), a, b)
}

func (r *runner) hamming(c *cli.Context) error {
	a, b, err := operands(c)
	if err != nil {
		return err
	}
	return eval(c, metrics.Instrument[string](metrics.StringHamming{}, metrics.WithLogger(r.logger)), a, b)
}

func (r *runner) lp(c *cli.Context) error {
	a, b, err := operands(c)
	if err != nil {
		return err
	}
	p, err := metrics.ParseOrder(c.String("p"))
	if err != nil {
		return err
	}
	m, err := metrics.NewLpNorm[float64](float64(p))
	if err != nil {
		return err
	}
	va, err := parseVector(a)
	if err != nil {
		return err
	}
	vb, err := parseVector(b)
	if err != nil {
		return err
	}
	return eval(c, metrics.Instrument[[]float64](m, metrics.WithLogger(r.logger)), va, vb)
}

func (r *runner) padic(c *cli.Context) error {
	a, b, err := operands(c)
	if err != nil {
		return err
	}
	p, err := parseBigInt(c.String("p"))
	if err != nil {
		return err
	}
	m, err := metrics.NewBigPAdic(p)
	if err != nil {
		return err
	}
	ia, err := parseBigInt(a)
	if err != nil {
		return err
	}
	ib, err := parseBigInt(b)
	if err != nil {
		return err
	}
	return eval(c, metrics.Instrument[*big.Int](m, metrics.WithLogger(r.logger)), ia, ib)
}

func (r *runner) config(c *cli.Context) error {
	a, b, err := operands(c)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return err
	}
	cfg, err := metrics.LoadConfig(data, r.codec)
	if err != nil {
		return err
	}

	opt := metrics.WithLogger(r.logger)
	switch domain := c.String("domain"); domain {
	case metrics.DomainVector:
		m, err := metrics.NewVectorMetric(cfg, opt)
		if err != nil {
			return err
		}
		va, err := parseVector(a)
		if err != nil {
			return err
		}
		vb, err := parseVector(b)
		if err != nil {
			return err
		}
		return eval(c, m, va, vb)
	case metrics.DomainString:
		m, err := metrics.NewStringMetric(cfg, opt)
		if err != nil {
			return err
		}
		return eval(c, m, a, b)
	case metrics.DomainInteger:
		m, err := metrics.NewIntegerMetric(cfg, opt)
		if err != nil {
			return err
		}
		ia, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return err
		}
		ib, err := strconv.ParseInt(b, 10, 64)
		if err != nil {
			return err
		}
		return eval(c, m, ia, ib)
	case metrics.DomainBigInteger:
		m, err := metrics.NewBigIntegerMetric(cfg, opt)
		if err != nil {
			return err
		}
		ia, err := parseBigInt(a)
		if err != nil {
			return err
		}
		ib, err := parseBigInt(b)
		if err != nil {
			return err
		}
		return eval(c, m, ia, ib)
	default:
		return fmt.Errorf("unknown domain %q", domain)
	}
}

func eval[T any](c *cli.Context, m metrics.Metric[T], a, b T) error {
	d, err := m.Dist(a, b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.App.Writer, strconv.FormatFloat(d, 'g', -1, 64))
	return err
}
