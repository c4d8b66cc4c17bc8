package main

import (
	"audio-transcriber/cmd/transcriber/cmd"
)

func main() {
	cmd.Execute()
}
