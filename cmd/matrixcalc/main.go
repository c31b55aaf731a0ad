package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"
)

type shell struct {
	Global
	Version   cmdVersion   `cmd:"" help:"display versioning information"`
	Add       cmdAdd       `cmd:"" help:"element-wise sum of two matrices"`
	Sub       cmdSub       `cmd:"" help:"element-wise difference of two matrices"`
	Mul       cmdMul       `cmd:"" help:"matrix product of two matrices"`
	Scale     cmdScale     `cmd:"" help:"multiply every element by a scalar"`
	Transpose cmdTranspose `cmd:"" help:"transpose a matrix"`
	Info      cmdInfo      `cmd:"" help:"display shape and structural properties"`
	At        cmdAt        `cmd:"" help:"display a single element"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"install shell completions"`
}

func options(s *shell) []kong.Option {
	return []kong.Option{
		kong.Name("matrixcalc"),
		kong.Description("dense matrix arithmetic on yaml/json files"),
		kong.Vars{
			"vars_output_default": outputText,
		},
		kong.UsageOnError(),
		kong.Bind(
			&s.Global,
		),
	}
}

func main() {
	var (
		err      error
		ctx      *kong.Context
		shellcli shell
	)

	log.SetFlags(log.Lshortfile | log.LUTC | log.Ltime)
	shellcli.Stdout = os.Stdout

	parser := kong.Must(&shellcli, options(&shellcli)...)

	kongplete.Complete(
		parser,
		kongplete.WithPredictor("matrix", complete.PredictOr(
			complete.PredictFiles("*.yaml"),
			complete.PredictFiles("*.yml"),
			complete.PredictFiles("*.json"),
		)),
	)

	if ctx, err = parser.Parse(os.Args[1:]); err != nil {
		log.Println(sprintErr(err))
		os.Exit(1)
	}

	if err = ctx.Run(); err != nil {
		log.Println(sprintErr(err))
		os.Exit(1)
	}
}

func sprintErr(err error) string {
	au := aurora.NewAurora(isatty.IsTerminal(os.Stderr.Fd()))
	return fmt.Sprint(au.Red("ERROR"), " ", err)
}
