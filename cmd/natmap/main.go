package main

import (
	"github.com/zan8in/gologger"
	"github.com/zan8in/natmap/pkg/natmap"
)

func main() {

	options := natmap.ParseOptions()

	runner, err := natmap.NewRunner(options)
	if err != nil {
		gologger.Fatal().Msg(err.Error())
	}

	if err := runner.Run(); err != nil {
		gologger.Fatal().Msg(err.Error())
	}
}
