// Command phonecheck normalizes a single North American phone number and
// prints its canonical form and components.
//
//	phonecheck [-format json|yaml|text] [-style canonical|display|e164|national|international] [-strict] <number...>
//
// Positional arguments are joined with spaces, so unquoted input such as
// phonecheck (212) 555-0100 works. With -strict, a number that is not
// assigned in the numbering plan prints nothing and exits with status 4.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"nanp_normalizer/internal/report"
	"nanp_normalizer/platform/apperr"
	"nanp_normalizer/platform/config"
	"nanp_normalizer/platform/logger"
	"nanp_normalizer/platform/phone"
	"nanp_normalizer/platform/validator"
)

type request struct {
	Raw    string `validate:"required"`
	Format string `validate:"required"`
	Style  string
	Strict bool
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config: "+err.Error())
		os.Exit(apperr.ExitCode(apperr.Wrap(apperr.KindInvalidInput, "invalid configuration", err)))
	}

	ctx := context.WithValue(context.Background(), logger.RequestIDKey, uuid.NewString())
	log := logger.New(cfg.GetEnv(), cfg.GetLogLevel())
	os.Exit(run(ctx, os.Args[1:], cfg, log, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, cfg config.OutputConfig, log *logger.Logger, stdout, stderr io.Writer) int {
	log = log.WithContext(ctx)
	val := validator.New()

	req, err := parseArgs(args, cfg, val, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return apperr.ExitCode(err)
	}

	if err := check(req, val, stdout, log); err != nil {
		fmt.Fprintln(stderr, err)
		return apperr.ExitCode(err)
	}
	return 0
}

func parseArgs(args []string, cfg config.OutputConfig, val *validator.Validator, stderr io.Writer) (request, error) {
	fs := flag.NewFlagSet("phonecheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", cfg.GetOutputFormat(), "output format: json, yaml or text")
	style := fs.String("style", cfg.GetDefaultStyle(), "print only this rendering: canonical, display, e164, national or international")
	strict := fs.Bool("strict", cfg.IsStrict(), "fail unless the number is assigned in the numbering plan")

	if err := fs.Parse(args); err != nil {
		return request{}, apperr.Wrap(apperr.KindInvalidInput, "invalid arguments", err)
	}

	req := request{
		Raw:    strings.Join(fs.Args(), " "),
		Format: strings.ToLower(strings.TrimSpace(*format)),
		Style:  *style,
		Strict: *strict,
	}
	if err := val.Struct(req); err != nil {
		return request{}, apperr.Wrap(apperr.KindInvalidInput, "usage: phonecheck [flags] <number>", err)
	}
	return req, nil
}

func check(req request, val *validator.Validator, stdout io.Writer, log *logger.Logger) error {
	p := phone.New(req.Raw)
	log.PhoneNormalized(p.Number(), !p.IsErrorNumber())

	if req.Strict {
		if err := val.Var(req.Raw, validator.TagNANPAssigned); err != nil {
			log.PhoneRejected("not an assigned number")
			return apperr.Wrap(apperr.KindInvalidNumber, fmt.Sprintf("%s is not an assigned number", p.Number()), err)
		}
	}

	if req.Style != "" {
		style, err := phone.ParseStyle(req.Style)
		if err != nil {
			return err
		}
		out, err := p.Format(style)
		if err != nil {
			log.PhoneRejected(err.Error())
			return err
		}
		fmt.Fprintln(stdout, out)
		return nil
	}

	enc, err := report.ForFormat(req.Format)
	if err != nil {
		return err
	}
	return enc.Encode(stdout, report.FromNumber(req.Raw, p))
}
