package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	calc "github.com/Besmart09/Advanced-Calculator--70"
)

func main() {
	log.SetFlags(0)
	var (
		inname          string
		nl, echo, rad   bool
		funcs, validate bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.BoolVar(&nl, "n", false, "parse separate input lines as separate expressions")
	flag.BoolVar(&echo, "echo", false, "print parse trees")
	flag.BoolVar(&rad, "rad", false, "trigonometric functions use radians instead of degrees")
	flag.BoolVar(&funcs, "funcs", false, "list the available functions and exit")
	flag.BoolVar(&validate, "check", false, "only report whether each expression is valid")
	flag.Parse()

	if funcs {
		fmt.Println(strings.Join(calc.Funcs(), " "))
		return
	}

	var srcs []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		in, err := readExprs(f, nl)
		if err != nil {
			log.Fatal(err)
		}
		srcs = append(srcs, in...)
	}
	srcs = append(srcs, flag.Args()...)

	var opts []calc.Option
	if rad {
		opts = append(opts, calc.Radians())
	}
	failed := false
	for _, src := range srcs {
		if validate {
			fmt.Println(calc.IsValidExpression(src))
			continue
		}
		a, err := calc.Parse(src)
		if err != nil {
			fmt.Println("Error:", err)
			failed = true
			continue
		}
		if echo {
			fmt.Printf("%v : ", a)
		}
		r, err := a.Eval(opts...)
		if err != nil {
			fmt.Println("Error:", err)
			failed = true
			continue
		}
		fmt.Println(calc.FormatResult(r))
	}
	if failed {
		os.Exit(1)
	}
}

// readExprs reads expressions from r. If nl is true, each non-blank line is
// an expression. Otherwise the entire input is one expression.
func readExprs(r io.Reader, nl bool) ([]string, error) {
	if !nl {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var v []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		if strings.TrimSpace(s.Text()) == "" {
			continue
		}
		v = append(v, s.Text())
	}
	return v, s.Err()
}

func infile(inname string, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
