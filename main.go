package main

import "github.com/bhavesharora02/Euron-Water-Supply/cmd/watertrack"

func main() {
	watertrack.Execute()
}
