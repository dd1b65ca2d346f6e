package main

import (
	"github.com/lunixbochs/mapvis/go/cmd"

	_ "github.com/lunixbochs/mapvis/go/cmd/report"

	_ "github.com/lunixbochs/mapvis/go/cmd/explore"
	_ "github.com/lunixbochs/mapvis/go/cmd/pack"
)

func main() { cmd.Main() }
