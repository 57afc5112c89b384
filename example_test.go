package clireader_test

import (
	"errors"
	"fmt"

	"github.com/toejough/clireader"
)

func ExampleParser_Parse() {
	p := clireader.New()
	p.MustRegister("-a", clireader.Blank)
	p.MustRegister("-b", clireader.ArgRequired)
	p.MustRegister("--range", clireader.SepOptional)

	out, err := p.Parse([]string{"-abVALUE", "--range=", "12,24", "notes.txt"})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(out.Handled("-a"), out.Value("-b"), out.Values("--range"), out.Operands())
	// Output: true VALUE [12 24] [notes.txt]
}

func ExampleError() {
	p := clireader.New()
	p.MustRegister("-x", clireader.ArgRequired)
	p.MustRegister("--name", clireader.SepRequired)

	_, err := p.Parse(nil)

	var perr *clireader.Error
	if errors.As(err, &perr) {
		fmt.Println(errors.Is(err, clireader.ErrMissingRequiredFlags), perr.Names)
	}

	fmt.Println(err)
	// Output:
	// true [-x --name]
	// missing required flags: [-x, --name]
}

func ExampleOutcome_Report() {
	p := clireader.New()
	p.MustRegister("-v", clireader.Blank)
	p.MustRegister("--depth", clireader.ArgOptional)

	out, _ := p.Parse([]string{"-v", "--depth82", "in.txt"})

	fmt.Print(out.Report(clireader.PlainStyles()))
	// Output:
	// [Flattened]
	//    -v --depth82 in.txt
	//
	// [Flag mapping list]
	//   -v                 blank         (set)
	//   [--depth <value>]  arg-optional  82
	//
	// [Stand-alone arguments]
	//   Argument:   in.txt
}
