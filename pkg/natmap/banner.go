package natmap

import (
	"github.com/zan8in/gologger"
)

var Version = "0.1.0"

func ShowBanner() {
	gologger.Print().Msgf("\n|||\tN A T M A P\t|||\t%s\n\n", Version)
}
