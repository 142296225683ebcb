package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/lolo1969/kontoauszug/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completer describes the CLI for shell completion. Complete() returns
// immediately unless the shell invoked the binary for a completion request.
var completer = &complete.Command{
	Sub: map[string]*complete.Command{
		"trades":  {Args: predict.Files("*.txt")},
		"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}, Args: predict.Files("*.txt")},
		"summary": {Args: predict.Files("*.txt")},
		"check":   {Args: predict.Files("*.txt")},
		"topic":   {Args: predict.Set{"readme", "statement-format", "cost-basis"}},
	},
}

func main() {
	completer.Complete("konto")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
