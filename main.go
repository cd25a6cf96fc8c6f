package main

import "github.com/nidohealth/nido_backend/cmd"

func main() {
	cmd.Execute()
}
