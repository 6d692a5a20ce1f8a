package main

import (
	"fmt"

	"github.com/zan8in/natmap/api"
)

func main() {

	rst, err := api.Generate("192.168.1.0/26", "10.188.65.0/26", true)
	if err != nil {
		fmt.Println(err.Error())
		return
	}

	for _, r := range rst {
		fmt.Println(r.DMZ, "->", r.Internal)
	}

}
