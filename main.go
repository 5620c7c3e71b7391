package main

import "github.com/Andersonspita/tempo-pago-dash/cmd"

func main() {
	cmd.Execute()
}
