package main

import (
	"pacbrowse/internal/pacbrowse"
)

func main() {
	pacbrowse.Main()
}
