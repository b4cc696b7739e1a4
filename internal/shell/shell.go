// Package shell is a line-oriented command interface to the catalog
// services.
//
// Each line is a command name followed by its arguments. Record fields are
// separated by a pipe: "add-agency Acme|1 Main St". Results go to the output
// writer, failures to the error writer as "Error: <message>".
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"sort"
	"strconv"
	"strings"

	"realestate/internal/domain"
	"realestate/internal/service"
)

// Banner is printed once when an interactive session starts
const Banner = "Real Estate CLI. Type 'help' for commands."

// usageError is shown as "Usage: ..." rather than "Error: ..."
type usageError string

func (u usageError) Error() string { return "Usage: " + string(u) }

type command struct {
	usage string
	run   func(ctx context.Context, args string) error
}

// Shell reads commands from in and writes results to out
type Shell struct {
	services  service.Services
	portfolio *service.Portfolio
	in        io.Reader
	out       io.Writer
	errOut    io.Writer
	// Prompt enables the banner and the "> " prompt
	Prompt bool

	commands map[string]command
}

// New creates a shell over the given services. portfolio may be nil, which
// disables export.
func New(services service.Services, portfolio *service.Portfolio, in io.Reader, out, errOut io.Writer) *Shell {
	s := &Shell{
		services:  services,
		portfolio: portfolio,
		in:        in,
		out:       out,
		errOut:    errOut,
	}
	s.commands = map[string]command{
		"add-agency":        {"add-agency name|address", s.addAgency},
		"list-agencies":     {"list-agencies", s.listAgencies},
		"get-agency":        {"get-agency id", s.getAgency},
		"update-agency":     {"update-agency id name|address", s.updateAgency},
		"delete-agency":     {"delete-agency id", s.deleteAgency},
		"add-realtor":       {"add-realtor name", s.addRealtor},
		"list-realtors":     {"list-realtors", s.listRealtors},
		"get-realtor":       {"get-realtor id", s.getRealtor},
		"update-realtor":    {"update-realtor id name", s.updateRealtor},
		"delete-realtor":    {"delete-realtor id", s.deleteRealtor},
		"add-property":      {"add-property city|price", s.addProperty},
		"list-properties":   {"list-properties", s.listProperties},
		"get-property":      {"get-property id", s.getProperty},
		"update-property":   {"update-property id city|price", s.updateProperty},
		"delete-property":   {"delete-property id", s.deleteProperty},
		"search-properties": {"search-properties [city=X] [min=N] [max=N] [sort=price]", s.searchProperties},
		"commission":        {"commission id [house|apartment]", s.commission},
		"export":            {"export json|yaml", s.export},
	}
	return s
}

// Run processes lines until EOF, "exit" or "quit", or ctx cancellation
func (s *Shell) Run(ctx context.Context) error {
	if s.Prompt {
		fmt.Fprintln(s.out, Banner)
	}

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.Prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			return nil
		}
		if quit := s.Exec(ctx, scanner.Text()); quit {
			return nil
		}
	}
}

// Exec runs one command line. It reports true when the line asks the shell
// to stop.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	name, args, _ := strings.Cut(line, " ")
	args = strings.TrimSpace(args)

	switch name {
	case "help":
		s.printHelp()
		return false
	case "exit", "quit":
		fmt.Fprintln(s.out, "Bye!")
		return true
	}

	cmd, ok := s.commands[name]
	if !ok {
		fmt.Fprintln(s.out, "Unknown command. Type 'help'.")
		return false
	}

	if err := cmd.run(ctx, args); err != nil {
		s.report(err)
	}
	return false
}

func (s *Shell) report(err error) {
	var u usageError
	if errors.As(err, &u) {
		fmt.Fprintln(s.out, u.Error())
		return
	}

	switch domain.KindOf(err) {
	case domain.KindInvalidInput, domain.KindNotFound:
	default:
		log.Printf("Shell command failed: %v", err)
	}
	fmt.Fprintln(s.errOut, "Error: "+domain.Message(err))
}

func (s *Shell) printHelp() {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  help")
	for _, name := range names {
		fmt.Fprintln(s.out, "  "+s.commands[name].usage)
	}
	fmt.Fprintln(s.out, "  exit")
}

// ============================================================================
// Argument Parsing
// ============================================================================

func parseID(v string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return 0, domain.InvalidInput("Invalid ID format")
	}
	return id, nil
}

func parsePrice(v string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, domain.InvalidInput("Price must be a number.")
	}
	if err := domain.RequireFinite("Price", n); err != nil {
		return 0, err
	}
	return n, nil
}

// splitPair splits "a|b" into two trimmed fields
func splitPair(args, usage string) (string, string, error) {
	a, b, ok := strings.Cut(args, "|")
	if !ok {
		return "", "", usageError(usage)
	}
	return strings.TrimSpace(a), strings.TrimSpace(b), nil
}

// splitID splits "id rest" and parses the id
func splitID(args, usage string) (int64, string, error) {
	idPart, rest, ok := strings.Cut(args, " ")
	if !ok || strings.TrimSpace(rest) == "" {
		return 0, "", usageError(usage)
	}
	id, err := parseID(idPart)
	if err != nil {
		return 0, "", err
	}
	return id, strings.TrimSpace(rest), nil
}

func requireArgs(args, usage string) error {
	if args == "" {
		return usageError(usage)
	}
	return nil
}
