package main

import "github.com/crmgate/bitrix24-go/internal/cli"

func main() {
	cli.Execute()
}
