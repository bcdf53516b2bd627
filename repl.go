package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/fatih/color"
	"github.com/kr/pretty"

	"go.creack.net/gocalc/calc"
	"go.creack.net/gocalc/executor"
	"go.creack.net/gocalc/format"
	"go.creack.net/gocalc/lexer"
)

// session holds the caller side state: the angle mode and display options.
type session struct {
	mode    executor.AngleMode
	group   bool
	showAST bool
	verbose bool
	prompt  string

	out    io.Writer
	errOut io.Writer
}

func modeIndicator(mode executor.AngleMode) string {
	if mode == executor.Degrees {
		return "DEG"
	}
	return "RAD"
}

func (s *session) render(v float64) string {
	if s.group {
		return format.Grouped(v)
	}
	return format.Format(v)
}

// eval evaluates one expression and reports the result or the failure.
func (s *session) eval(input string) bool {
	if s.verbose {
		tokens, err := lexer.Tokenize(input)
		log.Printf("Tokens for %q: %v (err: %v).", input, tokens, err)
	}
	if s.showAST || s.verbose {
		if expr, err := calc.Compile(input); err == nil {
			if s.verbose {
				log.Printf("Tree: %s.", expr.Dump())
			}
			if s.showAST {
				fmt.Fprintf(s.out, "%# v\n", pretty.Formatter(expr))
			}
		}
	}

	v, err := calc.EvaluateFloat(input, s.mode)
	if err != nil {
		fmt.Fprintf(s.errOut, "%s: %s\n", color.RedString("Error"), err)
		return false
	}
	fmt.Fprintln(s.out, color.GreenString(s.render(v)))
	return true
}

// repl reads one expression per line until EOF or a quit command.
func (s *session) repl(in io.Reader, interactive bool) error {
	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprintf(s.out, "[%s] %s", modeIndicator(s.mode), s.prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case ":q", ":quit", "exit":
			return nil
		case ":deg":
			s.mode = executor.Degrees
			fmt.Fprintln(s.out, modeIndicator(s.mode))
			continue
		case ":rad":
			s.mode = executor.Radians
			fmt.Fprintln(s.out, modeIndicator(s.mode))
			continue
		case ":mode":
			fmt.Fprintln(s.out, modeIndicator(s.mode))
			continue
		}
		if strings.HasPrefix(line, ":") {
			fmt.Fprintf(s.errOut, "%s: unknown command %q\n", color.RedString("Error"), line)
			continue
		}
		s.eval(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
