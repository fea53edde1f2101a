package main

import (
	"github.com/NikolasTh90/healthwatcher/cmd"
)

func main() {
	cmd.Execute()
}
