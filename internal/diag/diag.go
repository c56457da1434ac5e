// Package diag renders parse outcomes for the console.
package diag

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"net"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shravanasati/rawreq/internal/request"
)

// Outcome groups parse results for display.
type Outcome string

const (
	OutcomeOK           Outcome = "OK"
	OutcomeEmpty        Outcome = "EMPTY"
	OutcomeTimeout      Outcome = "TIMEOUT"
	OutcomeBadStartLine Outcome = "BAD START LINE"
	OutcomeLineRead     Outcome = "LINE READ"
	OutcomeBodyRead     Outcome = "BODY READ"
	OutcomeLimit        Outcome = "LIMIT"
	OutcomeError        Outcome = "ERROR"
)

// Classify maps a parse error to an Outcome. A nil error is OutcomeOK.
func Classify(err error) Outcome {
	var netErr net.Error
	var lineErr *request.LineReadError
	var bodyErr *request.BodyReadError

	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, request.ErrEmptyRequest):
		return OutcomeEmpty
	case errors.As(err, &netErr) && netErr.Timeout():
		return OutcomeTimeout
	case errors.Is(err, request.ErrMalformedRequestLine):
		return OutcomeBadStartLine
	case errors.Is(err, request.ErrLineTooLong),
		errors.Is(err, request.ErrTooManyHeaders),
		errors.Is(err, request.ErrBodyTooLarge):
		return OutcomeLimit
	case errors.As(err, &lineErr):
		return OutcomeLineRead
	case errors.As(err, &bodyErr):
		return OutcomeBodyRead
	default:
		return OutcomeError
	}
}

var methodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true).Background(lipgloss.Color("12")).Width(9).Align(lipgloss.Center)
var otherMethodStyle = methodStyle.Background(lipgloss.Color("5"))
var headerNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
var faintStyle = lipgloss.NewStyle().Faint(true)

func getOutcomeStyle(o Outcome) lipgloss.Style {
	switch o {
	case OutcomeOK:
		// Green
		return lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	case OutcomeEmpty, OutcomeTimeout:
		// Yellow
		return lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
	case OutcomeBadStartLine, OutcomeLimit:
		// Orange
		return lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	default:
		// Bright Red
		return lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	}
}

// Printer writes one diagnostic entry per parsed connection.
type Printer struct {
	logger  *log.Logger
	colored bool
}

// NewPrinter returns a Printer logging to logger. A nil logger means log.Default().
func NewPrinter(logger *log.Logger, colored bool) *Printer {
	if logger == nil {
		logger = log.Default()
	}
	return &Printer{logger: logger, colored: colored}
}

func (p *Printer) render(style lipgloss.Style, s string) string {
	if !p.colored {
		return s
	}
	return style.Render(s)
}

// FormatRequest renders a request over several lines: the request line,
// the sorted headers and the body.
func (p *Printer) FormatRequest(r *request.Request) string {
	var sb strings.Builder

	style := methodStyle
	if r.Method.IsOther() {
		style = otherMethodStyle
	}
	method := r.Method.String()
	if !p.colored {
		method = "[" + method + "]"
	}
	fmt.Fprintf(&sb, "%s %s %s", p.render(style, method), r.URI, r.Version)

	all := maps.Collect(r.Headers.All())
	for _, name := range slices.Sorted(maps.Keys(all)) {
		fmt.Fprintf(&sb, "\n  %s: %s", p.render(headerNameStyle, name), all[name])
	}

	if r.Body == "" {
		sb.WriteString("\n  " + p.render(faintStyle, "(no body)"))
	} else {
		fmt.Fprintf(&sb, "\n  %s\n%s", p.render(faintStyle, fmt.Sprintf("body (%d bytes):", len(r.Body))), r.Body)
	}
	return sb.String()
}

// FormatError renders a parse failure on one line.
func (p *Printer) FormatError(err error) string {
	o := Classify(err)
	return fmt.Sprintf("%s %v", p.render(getOutcomeStyle(o), "["+string(o)+"]"), err)
}

// Report logs the outcome of parsing one connection.
func (p *Printer) Report(remote net.Addr, req *request.Request, err error) {
	from := "unknown"
	if remote != nil {
		from = remote.String()
	}

	if err != nil {
		p.logger.Printf("%s from %s\n", p.FormatError(err), from)
		return
	}
	p.logger.Printf("%s from %s\n%s\n", p.render(getOutcomeStyle(OutcomeOK), "["+string(OutcomeOK)+"]"), from, p.FormatRequest(req))
}
